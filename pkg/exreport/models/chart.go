package models

// ChartSeries represents series metadata for a chart.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for category values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for data values.
	YRange string `json:"y_range,omitempty"`
}

// Chart represents chart metadata including series and layout.
type Chart struct {
	// Name is the chart name.
	Name string `json:"name"`
	// ChartType is the chart type (e.g., Column, Line, Pie).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// XAxisTitle is the category axis title.
	XAxisTitle string `json:"x_axis_title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// YAxisNumFmt is the value axis number format code.
	YAxisNumFmt string `json:"y_axis_num_fmt,omitempty"`
	// Legend reports whether the chart carries a legend.
	Legend bool `json:"legend"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
	// From is the top-left anchor cell (e.g., "D16").
	From string `json:"from,omitempty"`
}
