package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

// ReverseGeocode resolves coordinates to a display address for the signup
// form. A failure here never blocks signup; the caller falls back to manual
// entry.
func ReverseGeocode(ctx *gin.Context) {
	lat := ctx.Query("lat")
	lon := ctx.Query("lon")
	if lat == "" || lon == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "lat and lon query parameters are required")
		return
	}

	baseURL := os.Getenv("NOMINATIM_URL")
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org/reverse"
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).
		R().
		SetQueryParams(map[string]string{
			"format": "json",
			"lat":    lat,
			"lon":    lon,
		}).
		SetHeader("Accept", "application/json").
		Get(baseURL)
	if err != nil {
		log.Println("Reverse geocoding error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, "failed to resolve address")
		return
	}
	if resp.StatusCode() != http.StatusOK {
		sendErrorResponse(ctx, http.StatusBadGateway, "failed to resolve address")
		return
	}

	var geocodeResp struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.Unmarshal(resp.Body(), &geocodeResp); err != nil {
		sendErrorResponse(ctx, http.StatusBadGateway, "invalid response from geocoding service")
		return
	}

	address := geocodeResp.DisplayName
	if address == "" {
		address = fmt.Sprintf("%s, %s", lat, lon)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"address": address})
}
