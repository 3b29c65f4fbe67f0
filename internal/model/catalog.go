package model

// CatalogEntry is one leaf string value from a locale definition file.
type CatalogEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
	Empty bool   `json:"empty" yaml:"empty"`
	File  Path   `json:"file" yaml:"file"`
}
