// Package proto holds the Nakama match message schema.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative archsdinos.proto
