package models

// Coordinates is a lat/lon pair as returned by the weather provider.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentWeather is the client-facing shape of current conditions.
// Units are already converted: temperature in whole °C, wind speed in
// whole mph, visibility in whole miles, pressure as a 2-decimal inHg
// string, sunrise/sunset as 12-hour clock strings.
type CurrentWeather struct {
	Location    string      `json:"location"`
	Temperature int         `json:"temperature"`
	Condition   string      `json:"condition"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Humidity    int         `json:"humidity"`
	WindSpeed   int         `json:"windSpeed"`
	Visibility  int         `json:"visibility"`
	Pressure    string      `json:"pressure"`
	FeelsLike   int         `json:"feelsLike"`
	Sunrise     string      `json:"sunrise"`
	Sunset      string      `json:"sunset"`
	Coordinates Coordinates `json:"coordinates"`
}
