package client

import (
	"context"
	"net/url"
)

const hotelsPath = "/hotels"

type AmenityBody struct {
	Amenity string `json:"amenity"`
}

type HotelClient struct {
	httpClient *HttpClient
}

func NewHotelClient(baseURL string) *HotelClient {
	return &HotelClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *HotelClient) List(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, hotelsPath)
}

func (c *HotelClient) Create(ctx context.Context, body any) (*Response, error) {
	return c.httpClient.POST(ctx, hotelsPath, body)
}

func (c *HotelClient) Update(ctx context.Context, id string, body any) (*Response, error) {
	return c.httpClient.PUT(ctx, hotelPath(id), body)
}

func (c *HotelClient) AddAmenity(ctx context.Context, id, amenity string) (*Response, error) {
	return c.httpClient.PUT(ctx, hotelPath(id)+"/add-amenity", AmenityBody{Amenity: amenity})
}

func (c *HotelClient) RemoveAmenity(ctx context.Context, id, amenity string) (*Response, error) {
	return c.httpClient.PUT(ctx, hotelPath(id)+"/remove-amenity", AmenityBody{Amenity: amenity})
}

func (c *HotelClient) Delete(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.DELETE(ctx, hotelPath(id))
}

func (c *HotelClient) WaitForHealthy(ctx context.Context) error {
	return c.httpClient.WaitForHealthy(ctx, defaultHealthWait)
}

func hotelPath(id string) string {
	return hotelsPath + "/" + url.PathEscape(id)
}
