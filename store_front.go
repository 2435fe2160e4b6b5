//go:build js && wasm

package enroll

import "syscall/js"

// LocalStorage is a StateStore over window.localStorage.
type LocalStorage struct{}

func (LocalStorage) Get(key string) (string, error) {
	v := js.Global().Get("localStorage").Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", nil
	}
	return v.String(), nil
}

func (LocalStorage) Set(key, value string) error {
	js.Global().Get("localStorage").Call("setItem", key, value)
	return nil
}

// WindowOpener opens share links in a new tab.
type WindowOpener struct{}

func (WindowOpener) Open(url string) {
	js.Global().Call("open", url, "_blank")
}
