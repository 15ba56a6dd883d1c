// SPDX-License-Identifier: MIT

package instance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
	FormatCSV     Format = "csv"  // catalog input only
	FormatText    Format = "text" // report output only
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "msgpack", "mp", "mpk":
		return FormatMsgpack, nil
	case "csv":
		return FormatCSV, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension on %q", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Decode reads one instance document in format f. CSV input is read as a
// catalog (see LoadCatalog). The result is validated but not resolved.
func Decode(r io.Reader, f Format) (*Instance, error) {
	var (
		in  Instance
		err error
	)
	switch f {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&in)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&in)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&in)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&in)
	case FormatCSV:
		return LoadCatalog(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode %s instance", f)
	}
	if err = in.Validate(); err != nil {
		return nil, err
	}

	return &in, nil
}

// Encode writes v (an *Instance or a *Report) in format f.
// FormatText is accepted for *Report only.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "could not encode yaml")
		}
		return enc.Close()
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(v), "could not encode toml")
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "could not encode json")
	case FormatMsgpack:
		return errors.Wrap(msgpack.NewEncoder(w).Encode(v), "could not encode msgpack")
	case FormatText:
		r, ok := v.(*Report)
		if !ok {
			return fmt.Errorf("%w: text output needs a report, got %T", ErrUnknownFormat, v)
		}
		return r.WriteText(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Load reads the instance file at path, choosing the decoder by extension.
func Load(path string) (*Instance, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	in, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", path)
	}
	if in.Name == "" {
		in.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	log.WithField("path", path).WithField("sets", len(in.Sets)).Debug("Loaded instance")

	return in, nil
}
