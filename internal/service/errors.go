package service

import "errors"

// ErrSupplierNotFound is returned when a supplier id is not present in the
// current scored batch
var ErrSupplierNotFound = errors.New("supplier not found in current batch")

// ErrNoImportRun is returned when scores are requested before any import has run
var ErrNoImportRun = errors.New("no import has been run yet")

// ErrEmptyImport is returned when an import contains no usable rows
var ErrEmptyImport = errors.New("import contains no rows with a supplier id and name")

// ErrBonusNotFound is returned when no bonus adjustment exists for a supplier
var ErrBonusNotFound = errors.New("no bonus adjustment for supplier")

// ErrFactorNotFound is returned when a custom factor id does not exist for a supplier
var ErrFactorNotFound = errors.New("custom factor not found")
