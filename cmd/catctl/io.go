package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nfagan/categorical/categorical"
	"github.com/nfagan/categorical/internal/dispatch"
)

// readMatrix decodes a NumericMatrix from path, or from stdin when path is
// "" or "-".
func readMatrix(path string) (categorical.NumericMatrix, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return categorical.NumericMatrix{}, fmt.Errorf("catctl: open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	var nm categorical.NumericMatrix
	if err := json.NewDecoder(r).Decode(&nm); err != nil {
		return categorical.NumericMatrix{}, fmt.Errorf("catctl: decode matrix from %s: %w", path, err)
	}
	return nm, nil
}

// writeMatrix encodes nm as indented JSON to stdout.
func writeMatrix(nm categorical.NumericMatrix) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(nm); err != nil {
		return fmt.Errorf("catctl: encode matrix: %w", err)
	}
	return nil
}

// loadHandle reads a matrix from path and adopts it into d under a fresh
// Handle.
func loadHandle(d *dispatch.Dispatcher, path string, opts categorical.Options) (dispatch.Handle, error) {
	nm, err := readMatrix(path)
	if err != nil {
		return dispatch.Handle{}, err
	}
	c, st := categorical.FromNumericMatrix(nm, opts)
	if !st.Ok() {
		return dispatch.Handle{}, fmt.Errorf("catctl: load %s: %w", path, st)
	}
	return d.Adopt(c), nil
}

// emit runs to-numeric-matrix against h and writes the result as JSON.
func emit(ctx context.Context, d *dispatch.Dispatcher, h dispatch.Handle) error {
	res, err := d.Call(ctx, "to-numeric-matrix", h, nil)
	if err != nil {
		return err
	}
	return writeMatrix(res[0].(categorical.NumericMatrix))
}
