package backoffice

import (
	"encoding/json"
	"fmt"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
)

// Outcome is the classified result of a remote call. Exactly one of the
// success or failure fields is meaningful: Data when Success is true,
// Code and Message otherwise.
type Outcome struct {
	Success bool            `json:"success"           yaml:"success"`
	Data    json.RawMessage `json:"data,omitempty"    yaml:"data,omitempty"`
	Code    int             `json:"code,omitempty"    yaml:"code,omitempty"`
	Message string          `json:"message,omitempty" yaml:"message,omitempty"`
}

// Succeeded builds a success outcome carrying data.
func Succeeded(data json.RawMessage) Outcome {
	return Outcome{Success: true, Data: data}
}

// SucceededWith builds a success outcome from a value that is marshalled to JSON.
func SucceededWith(value interface{}) Outcome {
	data, err := json.Marshal(value)
	if err != nil {
		data, _ = json.Marshal(map[string]string{"message": err.Error()})
	}

	return Succeeded(data)
}

// Failed builds a failure outcome. An empty message is replaced by the
// generic failure message so failures are always displayable.
func Failed(code int, message string) Outcome {
	if message == "" {
		message = constants.MessageSomethingWentWrong
	}

	return Outcome{Code: code, Message: message}
}

// Err returns the failure as an error, or nil for a success.
func (o Outcome) Err() error {
	if o.Success {
		return nil
	}

	return &FailureError{Code: o.Code, Message: o.Message}
}

// Decode unmarshals the success payload into v.
func (o Outcome) Decode(v interface{}) error {
	if !o.Success {
		return o.Err()
	}

	if len(o.Data) == 0 {
		return nil
	}

	err := json.Unmarshal(o.Data, v)
	if err != nil {
		return fmt.Errorf("decoding outcome data: %w", err)
	}

	return nil
}

// String renders the outcome for logs.
func (o Outcome) String() string {
	if o.Success {
		return "success: " + string(o.Data)
	}

	return fmt.Sprintf("failure %d: %s", o.Code, o.Message)
}
