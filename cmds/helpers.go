package cmds

// Var defines name to set the value and name+"." to reset it to zero.
func Var[T any](name string, desc string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name to turn the value on and "!"+name to turn it off.
func Switch(name string, desc string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc(desc))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))

	return &value
}

// Setting is a flag value that remembers whether it was given.
type Setting[T any] struct {
	Value T
	IsSet bool
}

// Optional defines name to take a value and name+"." to forget it.
func Optional[T any](name string, desc string) *Setting[T] {
	setting := new(Setting[T])

	Define(name, Func(func(v T) {
		setting.Value = v
		setting.IsSet = true
	}).Desc(desc))

	Define(name+".", Func(func() {
		*setting = Setting[T]{}
	}).Desc("reset "+name))

	return setting
}

// OptionalSwitch defines name to turn the setting on and "!"+name to turn it off.
func OptionalSwitch(name string, desc string) *Setting[bool] {
	setting := new(Setting[bool])

	Define(name, Func(func() {
		*setting = Setting[bool]{Value: true, IsSet: true}
	}).Desc(desc))

	Define("!"+name, Func(func() {
		*setting = Setting[bool]{Value: false, IsSet: true}
	}).Desc("unset "+name))

	return setting
}

// Collect defines name to append a value each time it is given.
func Collect[T any](name string, desc string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc))
	return &value
}
