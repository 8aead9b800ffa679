package connect

import "context"

const (
	imagesRoute   = "images/"
	downloadRoute = "downloads/"
)

// Images looks up details of known image ids.
type Images struct {
	fluentRequest
}

// NewImages creates an images lookup bound to exec.
func NewImages(exec Executor) *Images {
	return &Images{fluentRequest: newFluentRequest(exec, imagesRoute)}
}

// WithID adds one image id to the lookup.
func (r *Images) WithID(id string) *Images {
	r.appendToList("ids", id)

	return r
}

// WithIDs adds several image ids to the lookup, in order.
func (r *Images) WithIDs(ids ...string) *Images {
	r.appendToList("ids", ids...)

	return r
}

// WithResponseField adds fields to the response field set.
func (r *Images) WithResponseField(fields ...string) *Images {
	r.appendToList("fields", fields...)

	return r
}

// Execute runs the lookup.
func (r *Images) Execute(ctx context.Context) (*ImagesResult, error) {
	var result ImagesResult
	if err := r.execute(ctx, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Download requests the download location of a licensed asset.
type Download struct {
	fluentRequest
}

// NewDownload creates a download request bound to exec.
func NewDownload(exec Executor) *Download {
	return &Download{fluentRequest: newFluentRequest(exec, downloadRoute)}
}

// WithID selects the asset to download.
func (r *Download) WithID(id string) *Download {
	r.setScalar("id", id)

	return r
}

func (r *Download) WithFileType(fileType FileType) *Download {
	if !fileType.IsZero() {
		r.setScalar("file_type", fileType.Value())
	}

	return r
}

// WithHeight requests a specific rendition height in pixels.
func (r *Download) WithHeight(height int) *Download {
	r.setPositive("height", height)

	return r
}

func (r *Download) WithProductID(productID int) *Download {
	r.setPositive("product_id", productID)

	return r
}

// WithAutoDownload asks the service to answer with the asset location directly.
func (r *Download) WithAutoDownload(auto bool) *Download {
	r.setBool("auto_download", auto)

	return r
}

// Execute resolves the download location.
func (r *Download) Execute(ctx context.Context) (*DownloadResult, error) {
	var result DownloadResult
	if err := r.execute(ctx, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
