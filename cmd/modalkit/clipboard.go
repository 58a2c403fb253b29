package main

import "github.com/atotto/clipboard"

// systemClipboard backs the + and * registers with the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) Get() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) Set(content string) error {
	return clipboard.WriteAll(content)
}
