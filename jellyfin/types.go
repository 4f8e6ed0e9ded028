package jellyfin

// SystemInfo holds the public server information exposed without auth
type SystemInfo struct {
	ServerName   string `json:"ServerName"`
	LocalAddress string `json:"LocalAddress"`
	Version      string `json:"Version"`
	ID           string `json:"Id"`
}

// Item is a single library item with its filesystem path
type Item struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
	Path string `json:"Path"`
}

// itemsResponse mirrors the /Items list payload
type itemsResponse struct {
	Items            []Item `json:"Items"`
	TotalRecordCount int    `json:"TotalRecordCount"`
}
