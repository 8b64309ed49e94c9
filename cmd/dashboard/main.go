package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"weather-dashboard/internal/client"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "dashboard server address")
	city := flag.String("city", "", "city to search instead of geolocating")
	lat := flag.Float64("lat", 0, "latitude (with -lon)")
	lon := flag.Float64("lon", 0, "longitude (with -lat)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var locator client.Locator = client.NoLocator{}
	if *lat != 0 || *lon != 0 {
		locator = client.StaticLocator{Lat: *lat, Lon: *lon}
	}

	ctrl := client.NewController(client.New(*addr), locator)
	if *city != "" {
		ctrl.Search(ctx, *city)
	} else {
		ctrl.Start(ctx)
	}

	snap := ctrl.Snapshot()
	if snap.State == client.StateError {
		log.Fatalf("fetch failed: %s", snap.Err)
	}

	w := snap.Weather
	fmt.Printf("%s — %d°C (feels like %d°C), %s\n", w.Location, w.Temperature, w.FeelsLike, w.Description)
	fmt.Printf("humidity %d%% | wind %d mph | visibility %d mi | pressure %s inHg\n",
		w.Humidity, w.WindSpeed, w.Visibility, w.Pressure)
	fmt.Printf("sunrise %s | sunset %s\n\n", w.Sunrise, w.Sunset)

	fmt.Println("Next 24 hours:")
	for _, h := range snap.Forecast.Hourly {
		fmt.Printf("  %-6s %3d°C  %3d%%  %s\n", h.Time, h.Temp, h.Precipitation, h.Description)
	}

	fmt.Println("\nThis week:")
	for _, d := range snap.Forecast.Weekly {
		fmt.Printf("  %-10s %d/%d°C  %3d%%  %s\n", d.Day, d.High, d.Low, d.Precipitation, d.Condition)
	}

	if snap.RecommendationsErr != "" {
		fmt.Printf("\nrecommendations unavailable: %s\n", snap.RecommendationsErr)
		return
	}
	if snap.Recommendations != nil {
		fmt.Printf("\n%s\n\n", snap.Recommendations.WeatherSummary)
		for _, rec := range snap.Recommendations.Recommendations {
			fmt.Printf("  [%v/10] %s (%s, %s, %s)\n      %s\n",
				rec.SuitabilityScore, rec.Title, rec.Category, rec.PriceRange, rec.Duration, rec.Description)
		}
		fmt.Printf("\n%s\n", snap.Recommendations.OverallRecommendation)
	}
}
