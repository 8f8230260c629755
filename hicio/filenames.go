package hicio

import (
	"fmt"
	"path/filepath"
)

// resolutionLabel maps a resolution in base pairs to the directory label
// used by the Rao et al. Hi-C data release layout, per
// original_source/prep.c: res2str. Only 1kb resolution is supported, as
// in the original.
func resolutionLabel(res int) (string, error) {
	switch res {
	case 1000:
		return "1kb", nil
	default:
		return "", fmt.Errorf("hicio: resolution %d is not supported", res)
	}
}

// FileNames holds the paths to the three per-chromosome Hi-C input files
// the reference pipeline reads, per original_source/prep.c: hicFileNames.
type FileNames struct {
	Raw       string
	Normalize string // "" if normalizeMethod == ""
	Expected  string // "" if expectedMethod == ""
}

// ResolveFileNames builds the RAWobserved / *norm / *expected paths for
// chromosome chr at resolution res under hicDir, following the Rao et al.
// directory layout:
//
//	<hicDir>/<res>_resolution_intrachromosomal/chr<chr>/MAPQGE30/chr<chr>_<res>.<suffix>
func ResolveFileNames(hicDir string, res, chr int, normalizeMethod, expectedMethod string) (FileNames, error) {
	label, err := resolutionLabel(res)
	if err != nil {
		return FileNames{}, err
	}

	head := filepath.Join(hicDir,
		fmt.Sprintf("%s_resolution_intrachromosomal", label),
		fmt.Sprintf("chr%d", chr),
		"MAPQGE30",
		fmt.Sprintf("chr%d_%s.", chr, label),
	)

	names := FileNames{Raw: head + "RAWobserved"}
	if normalizeMethod != "" {
		names.Normalize = head + normalizeMethod + "norm"
	}
	if expectedMethod != "" {
		names.Expected = head + expectedMethod + "expected"
	}
	return names, nil
}
