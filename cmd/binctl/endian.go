package main

import (
	"fmt"

	"github.com/binarylab/bitengine/pkg/bitbuf"
)

func parseEndian(s string) (bitbuf.Endian, error) {
	switch s {
	case "big":
		return bitbuf.BigEndian, nil
	case "little":
		return bitbuf.LittleEndian, nil
	case "native":
		return bitbuf.NativeEndian, nil
	default:
		return 0, fmt.Errorf("unknown endianness %q (want big, little, or native)", s)
	}
}

func parseMode(s string) (bitbuf.BitMode, error) {
	switch s {
	case "dependent":
		return bitbuf.Dependent, nil
	case "independent":
		return bitbuf.Independent, nil
	default:
		return 0, fmt.Errorf("unknown bit mode %q (want dependent or independent)", s)
	}
}
