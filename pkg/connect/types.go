package connect

import "time"

// DisplaySize is one rendition of an asset.
type DisplaySize struct {
	Name          string `json:"name"           yaml:"name"`
	URI           string `json:"uri"            yaml:"uri"`
	IsWatermarked bool   `json:"is_watermarked" yaml:"is_watermarked"`
}

// Keyword is a descriptive term attached to an asset.
type Keyword struct {
	KeywordID string `json:"keyword_id,omitempty" yaml:"keyword_id,omitempty"`
	Text      string `json:"text"                 yaml:"text"`
	Type      string `json:"type,omitempty"       yaml:"type,omitempty"`
}

// Image is the asset model shared by the search and images endpoints.
// Which fields are populated depends on the requested response fields.
type Image struct {
	ID                string        `json:"id"                           yaml:"id"`
	Title             string        `json:"title,omitempty"              yaml:"title,omitempty"`
	Caption           string        `json:"caption,omitempty"            yaml:"caption,omitempty"`
	Artist            string        `json:"artist,omitempty"             yaml:"artist,omitempty"`
	AssetFamily       string        `json:"asset_family,omitempty"       yaml:"asset_family,omitempty"`
	CollectionID      int           `json:"collection_id,omitempty"      yaml:"collection_id,omitempty"`
	CollectionCode    string        `json:"collection_code,omitempty"    yaml:"collection_code,omitempty"`
	CollectionName    string        `json:"collection_name,omitempty"    yaml:"collection_name,omitempty"`
	DateCreated       *time.Time    `json:"date_created,omitempty"       yaml:"date_created,omitempty"`
	DisplaySizes      []DisplaySize `json:"display_sizes,omitempty"      yaml:"display_sizes,omitempty"`
	EditorialSegments []string      `json:"editorial_segments,omitempty" yaml:"editorial_segments,omitempty"`
	GraphicalStyle    string        `json:"graphical_style,omitempty"    yaml:"graphical_style,omitempty"`
	Keywords          []Keyword     `json:"keywords,omitempty"           yaml:"keywords,omitempty"`
	LicenseModel      string        `json:"license_model,omitempty"      yaml:"license_model,omitempty"`
	MaxDimensions     *Dimensions   `json:"max_dimensions,omitempty"     yaml:"max_dimensions,omitempty"`
	People            []string      `json:"people,omitempty"             yaml:"people,omitempty"`
}

// Dimensions is the pixel size of the largest available rendition.
type Dimensions struct {
	Height int `json:"height" yaml:"height"`
	Width  int `json:"width"  yaml:"width"`
}

// SearchImagesResult is returned by the image search endpoints.
type SearchImagesResult struct {
	ResultCount int     `json:"result_count" yaml:"result_count"`
	Images      []Image `json:"images"       yaml:"images"`
}

// ImagesResult is returned by the images lookup endpoint.
type ImagesResult struct {
	Images         []Image  `json:"images"                     yaml:"images"`
	ImagesNotFound []string `json:"images_not_found,omitempty" yaml:"images_not_found,omitempty"`
}

// DownloadResult carries the location of the licensed asset.
type DownloadResult struct {
	URI string `json:"uri" yaml:"uri"`
}

// Collection describes a content collection available to the caller.
type Collection struct {
	ID           int      `json:"id"                      yaml:"id"`
	Code         string   `json:"code,omitempty"          yaml:"code,omitempty"`
	Name         string   `json:"name"                    yaml:"name"`
	LicenseModel string   `json:"license_model,omitempty" yaml:"license_model,omitempty"`
	AssetFamily  string   `json:"asset_family,omitempty"  yaml:"asset_family,omitempty"`
	ProductTypes []string `json:"product_types,omitempty" yaml:"product_types,omitempty"`
}

// CollectionsResult is returned by the collections endpoint.
type CollectionsResult struct {
	Collections []Collection `json:"collections" yaml:"collections"`
}

// Country is one entry of the countries endpoint.
type Country struct {
	IsoAlpha2 string `json:"iso_alpha_2" yaml:"iso_alpha_2"`
	IsoAlpha3 string `json:"iso_alpha_3" yaml:"iso_alpha_3"`
	Name      string `json:"name"        yaml:"name"`
}

// CountriesResult is returned by the countries endpoint.
type CountriesResult struct {
	Countries []Country `json:"countries" yaml:"countries"`
}
