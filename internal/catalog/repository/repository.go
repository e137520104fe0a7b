// Package repository supplies listing catalogs from external sources.
// The matcher itself never touches I/O; this layer hands it an immutable
// slice and gets out of the way.
package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"serenity_core/internal/catalog"
	"serenity_core/platform/apperr"
	"serenity_core/platform/logger"
	"serenity_core/platform/validator"

	"gopkg.in/yaml.v3"
)

// FileRepository loads listings from a JSON or YAML file. Records failing
// validation are skipped with a warning rather than failing the whole load;
// a sparse catalog beats no catalog.
type FileRepository struct {
	validate *validator.Validator
	log      *logger.Logger
}

// NewFileRepository creates a file-backed catalog supplier.
func NewFileRepository(validate *validator.Validator, log *logger.Logger) *FileRepository {
	return &FileRepository{validate: validate, log: log}
}

// Load reads the catalog at path. The format follows the file extension:
// .json, .yaml or .yml.
func (r *FileRepository) Load(path string) ([]catalog.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.Wrap(apperr.KindNotFound, fmt.Sprintf("catalog file %s not found", path), err).WithOp("catalog.load")
		}
		return nil, apperr.Wrap(apperr.KindInternal, fmt.Sprintf("reading catalog file %s", path), err).WithOp("catalog.load")
	}

	var records []catalog.Listing
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &records)
	case ".json":
		err = json.Unmarshal(data, &records)
	default:
		return nil, apperr.Validation(fmt.Sprintf("unsupported catalog format %q", filepath.Ext(path))).WithOp("catalog.load")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, fmt.Sprintf("decoding catalog file %s", path), err).WithOp("catalog.load")
	}

	listings := make([]catalog.Listing, 0, len(records))
	skipped := 0
	for i, record := range records {
		if err := r.validate.Struct(record); err != nil {
			skipped++
			if r.log != nil {
				r.log.CatalogRecordSkipped(path, i, err)
			}
			continue
		}
		listings = append(listings, record)
	}

	if r.log != nil {
		r.log.CatalogLoaded(path, len(listings), skipped)
	}
	return listings, nil
}
