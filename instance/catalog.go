// SPDX-License-Identifier: MIT

package instance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Catalog column positions. The first row is a header and is skipped.
const (
	colID = iota
	colLabels
	colInfo
	colWeight

	minCatalogColumns = colLabels + 1
	defaultSetWeight  = 1.0
)

// LoadCatalog reads a safeguard catalog and turns it into an Instance.
//
// Each row after the header is one candidate set:
//
//	id, "label, label, ...", info[, weight]
//
// The universe is every distinct label in first-seen order; each row's
// labels become its Labels. Weight defaults to 1 when the column is absent
// or blank. The instance comes back resolved.
//
// Errors: ErrBadCatalog for short rows, empty ids or unparsable weights.
func LoadCatalog(r io.Reader) (*Instance, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "could not read catalog")
	}

	var (
		in    = &Instance{}
		index = make(map[string]struct{})
		row   []string
		i     int
	)
	for i, row = range records {
		if i == 0 {
			continue // header
		}
		if len(row) < minCatalogColumns {
			return nil, fmt.Errorf("%w: row %d has %d column(s)", ErrBadCatalog, i+1, len(row))
		}
		set := Set{Name: strings.TrimSpace(row[colID]), Weight: defaultSetWeight}
		if set.Name == "" {
			return nil, fmt.Errorf("%w: row %d has an empty id", ErrBadCatalog, i+1)
		}
		if len(row) > colInfo {
			set.Info = strings.TrimSpace(row[colInfo])
		}
		if len(row) > colWeight && strings.TrimSpace(row[colWeight]) != "" {
			if set.Weight, err = strconv.ParseFloat(strings.TrimSpace(row[colWeight]), 64); err != nil {
				return nil, fmt.Errorf("%w: row %d weight: %v", ErrBadCatalog, i+1, err)
			}
		}
		for _, label := range strings.Split(row[colLabels], ",") {
			if label = strings.TrimSpace(label); label == "" {
				continue
			}
			if _, ok := index[label]; !ok {
				index[label] = struct{}{}
				in.Elements = append(in.Elements, label)
			}
			set.Labels = append(set.Labels, label)
		}
		in.Sets = append(in.Sets, set)
	}
	in.Universe = len(in.Elements)

	if err = in.Resolve(); err != nil {
		return nil, err
	}

	return in, nil
}
