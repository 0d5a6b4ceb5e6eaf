package match

import (
	"errors"
	"fmt"
)

// ErrInvalidRange indicates a range whose minimum exceeds its maximum.
// Such criteria are a caller configuration error and are rejected before
// any record is examined, rather than silently yielding empty results.
var ErrInvalidRange = errors.New("range min exceeds max")

// ContractError reports a record that violates the ingestion data
// contract, such as a missing status field. This signals a broken
// ingestion collaborator, not expected missing domain data, so both
// engines fail fast instead of treating the record as non-matching.
type ContractError struct {
	RecordID string
	Field    string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("record %s violates data contract: missing %s", e.RecordID, e.Field)
}
