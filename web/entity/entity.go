// Package entity defines the JSON response envelope shared by all controllers.
package entity

type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}
