package types

type Dimensions struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

func (d Dimensions) Swapped() Dimensions {
	return Dimensions{Width: d.Height, Height: d.Width}
}

// RenderParams is the document handed to the external template renderer.
type RenderParams struct {
	PluginSettings  map[string]string   `yaml:"plugin_settings" json:"plugin_settings"`
	Dates           []string            `yaml:"dates" json:"dates"`
	MenuData        map[string][]string `yaml:"menu_data" json:"menu_data"`
	DayStates       map[string]DayState `yaml:"day_states" json:"day_states"`
	DayNames        map[string]string   `yaml:"day_names" json:"day_names"`
	FormattedDates  map[string]string   `yaml:"formatted_dates" json:"formatted_dates"`
	SingleDateText  string              `yaml:"single_date_text" json:"single_date_text"`
	TodayStr        string              `yaml:"today_str" json:"today_str"`
	Timestamp       string              `yaml:"timestamp" json:"timestamp"`
	Title           string              `yaml:"title" json:"title"`
	Notice          string              `yaml:"notice,omitempty" json:"notice,omitempty"`
	ShowDate        bool                `yaml:"show_date" json:"show_date"`
	ShowTimestamp   bool                `yaml:"show_timestamp" json:"show_timestamp"`
	FontScale       float64             `yaml:"font_scale" json:"font_scale"`
	PrimaryColor    string              `yaml:"primary_color" json:"primary_color"`
	TextColor       string              `yaml:"text_color" json:"text_color"`
	BackgroundColor string              `yaml:"background_color" json:"background_color"`
}
