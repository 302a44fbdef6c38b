// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// LocalStorageKey names an entry of the local storage.
type LocalStorageKey string

const (
	KeyProfile        LocalStorageKey = "PROFILE"
	KeyDevToken       LocalStorageKey = "DEV_TOKEN"
	KeyLoginWith      LocalStorageKey = "LOGIN_WITH"
	KeyActiveTabIndex LocalStorageKey = "ACTIVE_TAB_INDEX"
	KeyIsLocalDev     LocalStorageKey = "IS_LOCAL_DEV"

	// KeyMasterKey holds the KEK-wrapped master key blob.
	KeyMasterKey LocalStorageKey = "MASTER_KEY"
)

// ItemType selects how a value is (de)serialized.
type ItemType string

const (
	// ItemString stores the value verbatim.
	ItemString ItemType = "string"

	// ItemNumber stores a base-10 integer or a float in shortest form.
	ItemNumber ItemType = "number"

	// ItemObject stores the JSON encoding of the value.
	ItemObject ItemType = "object"

	// ItemBoolean stores "true" or "false".
	ItemBoolean ItemType = "boolean"
)

// encodeItem turns value into its stored string form.
func encodeItem(value any, itemType ItemType) (string, error) {
	switch itemType {
	case ItemString:
		s, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("%w: %T is not a string", ErrItemTypeMismatch, value)
		}
		return s, nil

	case ItemNumber:
		switch n := value.(type) {
		case int:
			return strconv.Itoa(n), nil
		case int32:
			return strconv.FormatInt(int64(n), 10), nil
		case int64:
			return strconv.FormatInt(n, 10), nil
		case float64:
			return strconv.FormatFloat(n, 'g', -1, 64), nil
		default:
			return "", fmt.Errorf("%w: %T is not a number", ErrItemTypeMismatch, value)
		}

	case ItemBoolean:
		b, ok := value.(bool)
		if !ok {
			return "", fmt.Errorf("%w: %T is not a boolean", ErrItemTypeMismatch, value)
		}
		return strconv.FormatBool(b), nil

	case ItemObject:
		data, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrItemTypeMismatch, err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownItemType, string(itemType))
	}
}

// decodeItem parses raw into dest.
func decodeItem(raw string, itemType ItemType, dest any) error {
	switch itemType {
	case ItemString:
		p, ok := dest.(*string)
		if !ok {
			return fmt.Errorf("%w: %T is not *string", ErrItemTypeMismatch, dest)
		}
		*p = raw
		return nil

	case ItemNumber:
		switch p := dest.(type) {
		case *int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrCorruptedItem, err)
			}
			*p = n
		case *int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrCorruptedItem, err)
			}
			*p = n
		case *float64:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrCorruptedItem, err)
			}
			*p = f
		default:
			return fmt.Errorf("%w: %T is not a number pointer", ErrItemTypeMismatch, dest)
		}
		return nil

	case ItemBoolean:
		p, ok := dest.(*bool)
		if !ok {
			return fmt.Errorf("%w: %T is not *bool", ErrItemTypeMismatch, dest)
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptedItem, err)
		}
		*p = b
		return nil

	case ItemObject:
		if err := json.Unmarshal([]byte(raw), dest); err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptedItem, err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownItemType, string(itemType))
	}
}
