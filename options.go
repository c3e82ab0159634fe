package xcursor

// ExtractOption configures an Extractor.
//
// Example:
//
//	// Defaults: PNG, one worker, cursor_info.txt
//	ex := xcursor.NewExtractor()
//
//	// TIFF output written by four workers
//	ex := xcursor.NewExtractor(xcursor.WithFormat(xcursor.FormatTIFF), xcursor.WithWorkers(4))
type ExtractOption func(*extractOptions)

type extractOptions struct {
	format       Format
	workers      int
	manifestName string
}

func defaultExtractOptions() extractOptions {
	return extractOptions{
		format:       FormatPNG,
		workers:      1,
		manifestName: DefaultManifestName,
	}
}

// WithFormat sets the raster format of frame files.
func WithFormat(f Format) ExtractOption {
	return func(o *extractOptions) {
		o.format = f
	}
}

// WithWorkers sets how many frames are encoded concurrently.
// 1 (the default) writes frames strictly in order. Values <= 0 use GOMAXPROCS.
func WithWorkers(n int) ExtractOption {
	return func(o *extractOptions) {
		o.workers = n
	}
}

// WithManifestName sets the manifest file name. An empty name disables the
// manifest.
func WithManifestName(name string) ExtractOption {
	return func(o *extractOptions) {
		o.manifestName = name
	}
}
