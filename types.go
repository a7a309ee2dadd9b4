package untable

import (
	"github.com/mrjoshuak/untable/types"
)

// Record maps labels to values in the order the labels were found.
type Record = types.Record

// Value is the content of one label: a single string or a list of strings.
type Value = types.Value

// Kind tells which variant a Value holds.
type Kind = types.Kind

// Value kinds.
const (
	KindSingle   = types.KindSingle
	KindMultiple = types.KindMultiple
)

// SingleValue returns a Value holding s.
func SingleValue(s string) Value {
	return types.Single(s)
}

// MultipleValue returns a Value holding items in order.
func MultipleValue(items ...string) Value {
	return types.Multiple(items...)
}

// BuildInfo contains version and build information for the untable library.
type BuildInfo = types.BuildInfo

// GetBuildInfo returns the current version information for the untable library.
func GetBuildInfo() BuildInfo {
	return types.GetBuildInfo()
}

// Version is the current version of the untable library.
var Version = types.Version

// Name is the name of the untable library.
var Name = types.Name
