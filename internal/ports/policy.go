package ports

type ItemFilterPort interface {
	IsFiltered(name string) bool
}
