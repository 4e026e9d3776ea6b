package api

import (
	"encoding/json"
	"fmt"

	"github.com/openfab/printctl/internal/core/domain"
)

// The server answers in one of two shapes: the bare payload, or a
// `{success, data, message}` wrapper. decode resolves the shape once,
// explicitly: a body is an envelope iff it carries the `success` key, and
// anything that fits neither shape is a decode failure rather than a
// silently empty value.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decode[T any](data []byte) (T, error) {
	var v T

	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Success != nil {
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return v, fmt.Errorf("%w: envelope without data", domain.ErrDecode)
		}
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return v, fmt.Errorf("%w: %v", domain.ErrDecode, err)
		}
		return v, nil
	}

	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	return v, nil
}
