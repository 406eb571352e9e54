package ports

type SettingsSourcePort interface {
	LoadSettings(path string) (map[string]string, error)
}
