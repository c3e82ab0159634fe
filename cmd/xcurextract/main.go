// Command xcurextract extracts every frame of an Xcursor file as an image
// and writes a cursor_info.txt manifest next to them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/xcursor"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xcurextract", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		format  = fs.String("format", "png", "output image format: png, bmp or tiff")
		workers = fs.Int("workers", 1, "frames encoded concurrently (0 = one per CPU)")
		info    = fs.Bool("info", false, "print the manifest to stdout and write nothing")
		verbose = fs.Bool("v", false, "log parser and writer details to stderr")
	)
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *verbose {
		xcursor.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *info {
		if fs.NArg() != 1 {
			usage(fs)
			return 1
		}
		return printInfo(fs.Arg(0), stdout, stderr)
	}

	if fs.NArg() != 2 {
		usage(fs)
		return 1
	}
	input, outDir := fs.Arg(0), fs.Arg(1)

	f, err := xcursor.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ex := xcursor.NewExtractor(xcursor.WithFormat(f), xcursor.WithWorkers(*workers))
	report, err := ex.Extract(ctx, input, outDir)
	if report != nil && len(report.Result.Frames) > 0 {
		fmt.Fprintf(stdout, "Found %d frame(s) in cursor file\n", len(report.Result.Frames))
		for _, fo := range report.Frames {
			fmt.Fprintf(stdout, "Saved frame %d: %dx%d (size=%d, delay=%dms) -> %s\n",
				fo.Index, fo.Frame.Width, fo.Frame.Height, fo.Frame.Size, fo.Frame.Delay, fo.Path)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s: %v\n", input, err)
		return 1
	}

	fmt.Fprintf(stdout, "Successfully extracted cursor frames to '%s'\n", outDir)
	return 0
}

func printInfo(input string, stdout, stderr io.Writer) int {
	res, err := xcursor.ParseFile(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s: %v\n", input, err)
		return 1
	}
	if err := xcursor.WriteManifest(stdout, input, res); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "XCursor Frame Extractor\n")
	fmt.Fprintf(w, "Usage: %s [flags] <input_cursor_file> <output_directory>\n", fs.Name())
	fmt.Fprintf(w, "       %s -info <input_cursor_file>\n\n", fs.Name())
	fmt.Fprintf(w, "Extracts all frames from an XCursor file and saves them as images.\n")
	fmt.Fprintf(w, "Gzip and zstd compressed cursor files are accepted.\n\n")
	fmt.Fprintf(w, "Example:\n")
	fmt.Fprintf(w, "  %s /usr/share/icons/Adwaita/cursors/left_ptr ./extracted_frames/\n\n", fs.Name())
	fmt.Fprintf(w, "Output files:\n")
	fmt.Fprintf(w, "  frame_001.png, frame_002.png, ... - Individual cursor frames\n")
	fmt.Fprintf(w, "  cursor_info.txt - Metadata about the cursor\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
}
