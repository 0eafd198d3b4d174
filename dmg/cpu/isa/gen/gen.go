// This program generates the SM83 opcode tables in table.go from the
// published gbdev opcode description. Run via go generate in the parent
// package. By default the description is fetched over HTTP; use -src to
// point at a local copy.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
)

const defaultSource = "https://gbdev.io/gb-opcodes/opcodes.json"

type opcodeFile struct {
	Unprefixed map[string]opcodeEntry `json:"unprefixed"`
	CBPrefixed map[string]opcodeEntry `json:"cbprefixed"`
}

type opcodeEntry struct {
	Mnemonic string         `json:"mnemonic"`
	Bytes    int            `json:"bytes"`
	Cycles   []int          `json:"cycles"`
	Operands []operandEntry `json:"operands"`
	Flags    flagEntry      `json:"flags"`
}

type operandEntry struct {
	Name      string `json:"name"`
	Immediate bool   `json:"immediate"`
	Increment bool   `json:"increment"`
	Decrement bool   `json:"decrement"`
}

type flagEntry struct {
	Z string `json:"Z"`
	N string `json:"N"`
	H string `json:"H"`
	C string `json:"C"`
}

// Opcodes where an operand named "C" is the carry condition rather than
// the C register.
var conditionOpcodes = map[uint8]bool{
	0x38: true, // JR C
	0xD8: true, // RET C
	0xDA: true, // JP C
	0xDC: true, // CALL C
}

var mnemonics = map[string]string{
	"NOP": "NOP", "LD": "LD", "LDH": "LDH", "INC": "INC", "DEC": "DEC",
	"ADD": "ADD", "ADC": "ADC", "SUB": "SUB", "SBC": "SBC",
	"AND": "AND", "XOR": "XOR", "OR": "OR", "CP": "CP",
	"RLCA": "RLCA", "RRCA": "RRCA", "RLA": "RLA", "RRA": "RRA",
	"DAA": "DAA", "CPL": "CPL", "SCF": "SCF", "CCF": "CCF",
	"JR": "JR", "JP": "JP", "CALL": "CALL", "RET": "RET", "RETI": "RETI",
	"RST": "RST", "PUSH": "PUSH", "POP": "POP", "HALT": "HALT",
	"STOP": "STOP", "DI": "DI", "EI": "EI",
	"RLC": "RLC", "RRC": "RRC", "RL": "RL", "RR": "RR",
	"SLA": "SLA", "SRA": "SRA", "SWAP": "SWAP", "SRL": "SRL",
	"BIT": "BIT", "RES": "RES", "SET": "SET",
}

func main() {
	src := flag.String("src", "", "path to a local opcodes.json (fetched from gbdev.io when empty)")
	out := flag.String("out", "table.go", "output file")
	flag.Parse()

	data, err := load(*src)
	if err != nil {
		fail("loading opcode description: %v", err)
	}

	var file opcodeFile
	if err := json.Unmarshal(data, &file); err != nil {
		fail("parsing opcode description: %v", err)
	}

	var b strings.Builder
	b.WriteString("// Code generated by gen. DO NOT EDIT.\n")
	b.WriteString("//\n")
	b.WriteString("// Source: " + defaultSource + "\n\n")
	b.WriteString("package isa\n\n")

	writeTable(&b, "Table", file.Unprefixed, false)
	b.WriteString("\n")
	writeTable(&b, "TableCB", file.CBPrefixed, true)

	formatted, err := format.Source([]byte(b.String()))
	if err != nil {
		fail("formatting output: %v", err)
	}
	if err := os.WriteFile(*out, formatted, 0644); err != nil {
		fail("writing %s: %v", *out, err)
	}
}

func load(src string) ([]byte, error) {
	if src != "" {
		return os.ReadFile(src)
	}
	resp, err := http.Get(defaultSource)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", defaultSource, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func writeTable(b *strings.Builder, name string, entries map[string]opcodeEntry, prefixed bool) {
	codes := make([]int, 0, len(entries))
	byCode := make(map[int]opcodeEntry, len(entries))
	for key, entry := range entries {
		code, err := strconv.ParseUint(strings.TrimPrefix(key, "0x"), 16, 8)
		if err != nil {
			fail("bad opcode key %q: %v", key, err)
		}
		codes = append(codes, int(code))
		byCode[int(code)] = entry
	}
	sort.Ints(codes)

	fmt.Fprintf(b, "var %s = [256]*Opcode{\n", name)
	for _, code := range codes {
		entry := byCode[code]
		if entry.Mnemonic == "PREFIX" || strings.HasPrefix(entry.Mnemonic, "ILLEGAL") {
			continue
		}
		fmt.Fprintf(b, "\t0x%02X: %s,\n", code, formatEntry(uint8(code), entry, prefixed))
	}
	b.WriteString("}\n")
}

func formatEntry(code uint8, entry opcodeEntry, prefixed bool) string {
	mnemonic, ok := mnemonics[entry.Mnemonic]
	if !ok {
		fail("opcode 0x%02X: unknown mnemonic %q", code, entry.Mnemonic)
	}

	taken := entry.Cycles[0]
	notTaken := taken
	if len(entry.Cycles) == 2 {
		// The description lists [taken, not-taken] for branches.
		notTaken = entry.Cycles[1]
	}

	bitIndex := 0
	operands := make([]string, 0, len(entry.Operands))
	for _, op := range entry.Operands {
		target, bit := mapTarget(code, op, prefixed)
		if bit >= 0 {
			bitIndex = bit
		}
		operands = append(operands, fmt.Sprintf("{%s, %v}", target, op.Immediate))
	}

	ops := "nil"
	if len(operands) > 0 {
		ops = "[]Operand{" + strings.Join(operands, ", ") + "}"
	}

	return fmt.Sprintf("{%s, %d, Cycles{%d, %d}, %s, %d, %s}",
		mnemonic, entry.Bytes, taken, notTaken, ops, bitIndex,
		formatFlags(entry))
}

func mapTarget(code uint8, op operandEntry, prefixed bool) (string, int) {
	switch op.Name {
	case "A", "B", "D", "E", "H", "L":
		if !op.Immediate {
			fail("opcode 0x%02X: unexpected memory operand %s", code, op.Name)
		}
		return "Reg" + op.Name, -1
	case "C":
		if !op.Immediate {
			return "AddrC", -1
		}
		if !prefixed && conditionOpcodes[code] {
			return "CondC", -1
		}
		return "RegC", -1
	case "AF", "SP":
		return "Reg" + op.Name, -1
	case "BC", "DE":
		if op.Immediate {
			return "Reg" + op.Name, -1
		}
		return "Addr" + op.Name, -1
	case "HL":
		if op.Immediate {
			return "RegHL", -1
		}
		switch {
		case op.Increment:
			return "AddrHLInc", -1
		case op.Decrement:
			return "AddrHLDec", -1
		}
		return "AddrHL", -1
	case "n8":
		return "Imm8", -1
	case "n16":
		return "Imm16", -1
	case "e8":
		return "Rel8", -1
	case "a8":
		return "AddrImm8", -1
	case "a16":
		if op.Immediate {
			return "Imm16", -1
		}
		return "AddrImm16", -1
	case "NZ":
		return "CondNZ", -1
	case "Z":
		return "CondZ", -1
	case "NC":
		return "CondNC", -1
	}

	if strings.HasPrefix(op.Name, "$") {
		vector, err := strconv.ParseUint(op.Name[1:], 16, 8)
		if err != nil {
			fail("opcode 0x%02X: bad vector %q", code, op.Name)
		}
		return "Vector", int(vector / 8)
	}
	if len(op.Name) == 1 && op.Name[0] >= '0' && op.Name[0] <= '7' {
		return "Bit", int(op.Name[0] - '0')
	}

	fail("opcode 0x%02X: unknown operand %q", code, op.Name)
	return "", -1
}

func formatFlags(entry opcodeEntry) string {
	z := mapFlag(entry.Mnemonic, "Z", entry.Flags.Z)
	n := mapFlag(entry.Mnemonic, "N", entry.Flags.N)
	h := mapFlag(entry.Mnemonic, "H", entry.Flags.H)
	c := mapFlag(entry.Mnemonic, "C", entry.Flags.C)
	if z == "FlagNone" && n == "FlagNone" && h == "FlagNone" && c == "FlagNone" {
		return "Flags{}"
	}
	return fmt.Sprintf("Flags{%s, %s, %s, %s}", z, n, h, c)
}

func mapFlag(mnemonic, name, action string) string {
	switch action {
	case "-":
		return "FlagNone"
	case "0":
		return "FlagReset"
	case "1":
		return "FlagSet"
	case name:
		// CCF toggles carry rather than computing it.
		if mnemonic == "CCF" && name == "C" {
			return "FlagInvert"
		}
		return "FlagCalc"
	}
	fail("%s: unknown flag action %q for %s", mnemonic, action, name)
	return ""
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "gen: "+format+"\n", args...)
	os.Exit(1)
}
