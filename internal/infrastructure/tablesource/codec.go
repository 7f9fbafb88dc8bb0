package tablesource

import (
	"fmt"
	"io"
	"path"
	"strings"

	"witnet_addresses/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format is the serialization of an address table document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the format from a file name or URL path extension.
// Anything that is not .yaml/.yml is treated as JSON.
func FormatFromPath(p string) Format {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses an address table document.
func Decode(data []byte, format Format) (entity.AddressTable, error) {
	var table entity.AddressTable
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &table)
	case FormatJSON:
		if err = json.Unmarshal(data, &table); err == nil {
			err = checkUniqueKeys(data)
		}
	default:
		return nil, fmt.Errorf("unsupported address table format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s address table: %w", format, err)
	}
	if table == nil {
		return nil, fmt.Errorf("decode %s address table: document is empty", format)
	}
	return table, nil
}

// checkUniqueKeys walks a JSON document and fails on an object that repeats a key.
// Unmarshal alone keeps the last value, while the YAML decoder rejects the same input.
func checkUniqueKeys(data []byte) error {
	iter := jsoniter.ParseBytes(json, data)
	var dup error
	var walk func(it *jsoniter.Iterator, path string)
	walk = func(it *jsoniter.Iterator, path string) {
		switch it.WhatIsNext() {
		case jsoniter.ObjectValue:
			seen := make(map[string]struct{})
			it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
				if _, ok := seen[key]; ok {
					dup = fmt.Errorf("duplicate key %q in %s", key, path)
					return false
				}
				seen[key] = struct{}{}
				walk(it, path+"."+key)
				return dup == nil && it.Error == nil
			})
		case jsoniter.ArrayValue:
			it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
				walk(it, path+"[]")
				return dup == nil && it.Error == nil
			})
		default:
			it.Skip()
		}
	}
	walk(iter, "$")
	if dup != nil {
		return dup
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return iter.Error
	}
	return nil
}

// Encode serializes an address table. JSON output is indented.
func Encode(table entity.AddressTable, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(table)
	case FormatJSON:
		return json.MarshalIndent(table, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported address table format %q", format)
	}
}
