// Package weather serves current conditions at the temple site from the
// Open-Meteo forecast API (keyless).
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"staykedarnath/internal/pkg/response"
)

const openMeteoURL = "https://api.open-meteo.com/v1/forecast"

// Kedarnath temple coordinates.
const (
	siteLatitude  = 30.7352
	siteLongitude = 79.0669
)

type Current struct {
	TemperatureC  float64   `json:"temperature_c"`
	WindSpeedKmh  float64   `json:"wind_speed_kmh"`
	WeatherCode   int       `json:"weather_code"`
	Precipitation float64   `json:"precipitation_mm"`
	ObservedAt    time.Time `json:"observed_at"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    openMeteoURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type openMeteoResponse struct {
	Current struct {
		Time          string  `json:"time"`
		Temperature   float64 `json:"temperature_2m"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		WeatherCode   int     `json:"weather_code"`
		Precipitation float64 `json:"precipitation"`
	} `json:"current"`
}

func (c *Client) Fetch(ctx context.Context) (*Current, error) {
	url := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&current=temperature_2m,wind_speed_10m,weather_code,precipitation",
		c.baseURL, siteLatitude, siteLongitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API error %s: %s", resp.Status, string(raw))
	}

	var parsed openMeteoResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("weather response decode failed: %w", err)
	}

	observed, _ := time.Parse("2006-01-02T15:04", parsed.Current.Time)
	return &Current{
		TemperatureC:  parsed.Current.Temperature,
		WindSpeedKmh:  parsed.Current.WindSpeed,
		WeatherCode:   parsed.Current.WeatherCode,
		Precipitation: parsed.Current.Precipitation,
		ObservedAt:    observed,
	}, nil
}

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/weather", h.Get)
}

func (h *Handler) Get(c *gin.Context) {
	current, err := h.client.Fetch(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "WEATHER_UNAVAILABLE", err.Error())
		return
	}
	response.Success(c, http.StatusOK, current)
}
