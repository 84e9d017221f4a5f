package main

import (
	"reflect"
	"testing"
)

func TestFindIntersection(t *testing.T) {
	commands := []string{"--compress", "--decompress", "--benchmark"}
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"none", []string{"a.txt"}, nil},
		{"single", []string{"--compress", "a.txt"}, []string{"--compress"}},
		{"repeated", []string{"--compress", "--compress", "a.txt"}, []string{"--compress"}},
		{"distinct", []string{"--decompress", "a.lzh", "--compress", "--decompress"}, []string{"--decompress", "--compress"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findIntersection(commands, tt.args); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("findIntersection(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestRemoveArgs(t *testing.T) {
	got := removeArgs([]string{"--compress", "--chain", "8", "--compress", "a.txt"}, []string{"--compress"})
	if want := []string{"--chain", "8", "a.txt"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("removeArgs = %v, want %v", got, want)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a.txt, ,b.txt,")
	if want := []string{"a.txt", "b.txt"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("splitList = %v, want %v", got, want)
	}
}
