package simulator

import "github.com/huynhanx03/go-linear/pkg/datastructs/linear"

// Result is the post-operation view handed to presentation layers.
type Result struct {
	Command   string      `json:"command"`
	Mode      linear.Mode `json:"mode"`
	Elements  []int64     `json:"elements"`
	Empty     bool        `json:"empty"`
	Size      int         `json:"size"`
	Capacity  int         `json:"capacity"`
	Remaining int         `json:"remaining"`
	Full      bool        `json:"full"`

	// Value is set by remove, stack peek and the numeric queries.
	Value *int64 `json:"value,omitempty"`
	// Front and Rear are set by queue peek.
	Front *int64 `json:"front,omitempty"`
	Rear  *int64 `json:"rear,omitempty"`
	// Flag is set by is_empty and is_full.
	Flag *bool `json:"flag,omitempty"`

	ErrorKind string `json:"error_kind,omitempty"`
	Message   string `json:"message"`
}

func int64Ptr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }
