// Command binspect inspects buffers encoded in the bincodec wire format.
//
// The format carries no type metadata, so binspect does not guess: the
// caller tells it how to interpret the bytes, either up front with -read or
// step by step in the interactive mode.
//
//	binspect -in payload.bin -dump
//	binspect -hex e903000000000000 -read u64
//	binspect -in payload.bin -order big -read u64,string,bool
//	binspect -in payload.bin -i
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bincodec/byteorder"
	"github.com/wippyai/bincodec/wire"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to the encoded file")
		hexStr      = flag.String("hex", "", "Inline hex string instead of a file")
		orderName   = flag.String("order", "little", "Byte order: little or big")
		dump        = flag.Bool("dump", false, "Print an offset-annotated hex dump and exit")
		readSpec    = flag.String("read", "", "Comma-separated value types to read (u8..u128, i8..i128, f32, f64, bool, string, rune, tag, count)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log every raw read")
	)
	flag.Parse()

	data, err := loadInput(*inFile, *hexStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if data == nil {
		fmt.Fprintln(os.Stderr, "Usage: binspect -in <file> [-order little|big] -dump")
		fmt.Fprintln(os.Stderr, "       binspect -in <file> -read u64,string,bool")
		fmt.Fprintln(os.Stderr, "       binspect -in <file> -i  (interactive mode)")
		os.Exit(1)
	}

	ctx, err := parseOrder(*orderName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		wire.SetLogger(logger)
	}

	switch {
	case *interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(data, ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *readSpec != "":
		if err := runRead(data, ctx, *readSpec, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *dump:
		runDump(data)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func loadInput(inFile, hexStr string) ([]byte, error) {
	switch {
	case inFile != "" && hexStr != "":
		return nil, fmt.Errorf("-in and -hex are mutually exclusive")
	case inFile != "":
		return os.ReadFile(inFile)
	case hexStr != "":
		data, err := hex.DecodeString(strings.ReplaceAll(hexStr, " ", ""))
		if err != nil {
			return nil, fmt.Errorf("parse hex: %w", err)
		}
		return data, nil
	default:
		return nil, nil
	}
}

func parseOrder(name string) (wire.Context, error) {
	switch name {
	case "little":
		return wire.NewContext(byteorder.LittleEndian), nil
	case "big":
		return wire.NewContext(byteorder.BigEndian), nil
	default:
		return wire.Context{}, fmt.Errorf("unknown byte order %q (want little or big)", name)
	}
}

// runRead interprets the buffer as the given sequence of typed values and
// prints one line per value with its starting offset.
func runRead(data []byte, ctx wire.Context, spec string, verbose bool) error {
	buf := wire.NewBufferSourceWithContext(data, ctx)
	var src wire.Source = buf
	if verbose {
		src = wire.NewTraceSource(buf)
	}

	for _, kind := range strings.Split(spec, ",") {
		kind = strings.TrimSpace(kind)
		offset := buf.Position()
		value, err := readAs(src, kind)
		if err != nil {
			return fmt.Errorf("%s at offset %d: %w", kind, offset, err)
		}
		fmt.Printf("%08x  %-7s %s\n", offset, kind, value)
	}
	if buf.Remaining() > 0 {
		fmt.Printf("%08x  %d bytes not consumed\n", buf.Position(), buf.Remaining())
	}
	return nil
}

// readAs reads one value of the named type and renders it.
func readAs(src wire.Source, kind string) (string, error) {
	switch kind {
	case "u8":
		v, err := wire.ReadU8(src)
		return fmt.Sprintf("%d", v), err
	case "u16":
		v, err := wire.ReadU16(src)
		return fmt.Sprintf("%d", v), err
	case "u32":
		v, err := wire.ReadU32(src)
		return fmt.Sprintf("%d", v), err
	case "u64":
		v, err := wire.ReadU64(src)
		return fmt.Sprintf("%d", v), err
	case "u128":
		v, err := wire.ReadU128(src)
		return fmt.Sprintf("hi=%d lo=%d", v.Hi, v.Lo), err
	case "i8":
		v, err := wire.ReadI8(src)
		return fmt.Sprintf("%d", v), err
	case "i16":
		v, err := wire.ReadI16(src)
		return fmt.Sprintf("%d", v), err
	case "i32":
		v, err := wire.ReadI32(src)
		return fmt.Sprintf("%d", v), err
	case "i64":
		v, err := wire.ReadI64(src)
		return fmt.Sprintf("%d", v), err
	case "i128":
		v, err := wire.ReadI128(src)
		return fmt.Sprintf("hi=%d lo=%d", v.Hi, v.Lo), err
	case "f32":
		v, err := wire.ReadF32(src)
		return fmt.Sprintf("%g", v), err
	case "f64":
		v, err := wire.ReadF64(src)
		return fmt.Sprintf("%g", v), err
	case "bool":
		v, err := wire.ReadBool(src)
		return fmt.Sprintf("%t", v), err
	case "string":
		v, err := wire.ReadString(src)
		return fmt.Sprintf("%q", v), err
	case "rune":
		v, err := wire.ReadU32(src)
		return fmt.Sprintf("%q", rune(v)), err
	case "tag":
		v, err := wire.ReadU8(src)
		if err != nil {
			return "", err
		}
		switch v {
		case 0, 1:
			return fmt.Sprintf("%d", v), nil
		default:
			return fmt.Sprintf("%d (not a valid tag)", v), nil
		}
	case "count":
		v, err := wire.ReadU32(src)
		return fmt.Sprintf("%d elements", v), err
	default:
		return "", fmt.Errorf("unknown value type %q", kind)
	}
}

const bytesPerRow = 16

// runDump prints a plain hex dump with offsets and an ASCII column.
func runDump(data []byte) {
	for off := 0; off < len(data); off += bytesPerRow {
		end := off + bytesPerRow
		if end > len(data) {
			end = len(data)
		}
		row := data[off:end]

		var hexCol, asciiCol strings.Builder
		for i, b := range row {
			if i == bytesPerRow/2 {
				hexCol.WriteByte(' ')
			}
			fmt.Fprintf(&hexCol, "%02x ", b)
			if b >= 0x20 && b < 0x7F {
				asciiCol.WriteByte(b)
			} else {
				asciiCol.WriteByte('.')
			}
		}
		fmt.Printf("%08x  %-49s |%s|\n", off, hexCol.String(), asciiCol.String())
	}
	fmt.Printf("%08x\n", len(data))
}
