// huffman-encoder Huffman-encodes a UTF-8 text file into a '0'/'1'
// bit-string, then decodes it again to check the round trip.
//
// Usage:
//
//	huffman-encoder [-d|--dir <dir>] [-e|--encoded <name>] [-r|--result <name>] [-q] [-v] [<filename>]
//
// If no filename is given, it is read from stdin, and the prompt is
// repeated until a readable UTF-8 file is named.
//
// Options:
//
//	-d, --dir <dir>         Directory for the output files (default ".")
//	-e, --encoded <name>    Name of the encoded output file (default "encoded.huff")
//	-r, --result <name>     Name of the decoded output file (default "result.txt")
//	-n, --attempts <n>      Give up after n failed prompts (default 0, unlimited)
//	-q, --quiet             Do not print the original, encoded and decoded text
//	-v, --verbose           Dump the Huffman tree and code table to stderr
//	-h, -?, --help          Print help message
//	    --version           Print version information
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/textbits/huffman"
)

const version = "1.0.0"

const prompt = "Insert file name you would like to encode with the file extension: "

var (
	errNoInput      = errors.New("no more input on stdin")
	errNotUTF8      = errors.New("unsupported encoding")
	errTooManyTries = errors.New("too many failed attempts")
)

type options struct {
	dir      string
	encoded  string
	result   string
	attempts int
	quiet    bool
	verbose  bool
	showHelp bool
	showVer  bool
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("huffman-encoder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.dir, "d", ".", "output directory")
	fs.StringVar(&opts.dir, "dir", ".", "output directory")
	fs.StringVar(&opts.encoded, "e", "encoded.huff", "encoded output file name")
	fs.StringVar(&opts.encoded, "encoded", "encoded.huff", "encoded output file name")
	fs.StringVar(&opts.result, "r", "result.txt", "decoded output file name")
	fs.StringVar(&opts.result, "result", "result.txt", "decoded output file name")
	fs.IntVar(&opts.attempts, "n", 0, "maximum failed prompts")
	fs.IntVar(&opts.attempts, "attempts", 0, "maximum failed prompts")
	fs.BoolVar(&opts.quiet, "q", false, "quiet mode")
	fs.BoolVar(&opts.quiet, "quiet", false, "quiet mode")
	fs.BoolVar(&opts.verbose, "v", false, "verbose mode")
	fs.BoolVar(&opts.verbose, "verbose", false, "verbose mode")
	fs.BoolVar(&opts.showHelp, "h", false, "print help message")
	fs.BoolVar(&opts.showHelp, "help", false, "print help message")
	fs.BoolVar(&opts.showHelp, "?", false, "print help message")
	fs.BoolVar(&opts.showVer, "version", false, "print version information")
	fs.Usage = func() { usage(stderr) }
	return fs
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: huffman-encoder [-d|--dir <dir>] [-e|--encoded <name>] [-r|--result <name>] [-q] [-v] [<filename>]\n\n")
	fmt.Fprintf(w, "Huffman-encode a UTF-8 text file into a bit-string and decode it back\n\n")
	fmt.Fprintf(w, "If no filename is given, it is read from stdin.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprintf(w, "  -d, --dir <dir>       directory for the output files\n")
	fmt.Fprintf(w, "  -e, --encoded <name>  name of the encoded output file\n")
	fmt.Fprintf(w, "  -r, --result <name>   name of the decoded output file\n")
	fmt.Fprintf(w, "  -n, --attempts <n>    give up after n failed prompts (0 = unlimited)\n")
	fmt.Fprintf(w, "  -q, --quiet           do not echo the text and its encoding\n")
	fmt.Fprintf(w, "  -v, --verbose         dump the Huffman tree and code table\n")
	fmt.Fprintf(w, "  -h, -?, --help        print this message\n")
	fmt.Fprintf(w, "      --version         print version information\n")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if opts.showHelp {
		usage(stdout)
		return 0
	}

	if opts.showVer {
		fmt.Fprintf(stdout, "huffman-encoder %s\n", version)
		return 0
	}

	if fs.NArg() > 1 {
		usage(stderr)
		return 2
	}

	filename, content, err := readInput(fs.Arg(0), stdin, stdout, stderr, opts.attempts)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	encoded, decoded, err := process(&opts, content, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR '%s': %v\n", filename, err)
		return 1
	}

	fmt.Fprintf(stdout, "Note: the encoded and decoded files can be found in %s\n", opts.dir)
	if opts.quiet {
		return 0
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Original text in %s: %s\n", filename, content)
	fmt.Fprintf(stdout, "Huffman encoding: %s\n", encoded)
	fmt.Fprintf(stdout, "Huffman decoding: %s\n", decoded)
	return 0
}

// readInput returns the name and content of the first readable UTF-8 file.
// If filename is empty, names are read one per line from stdin, and the user
// is prompted again after each failure.
func readInput(filename string, stdin io.Reader, stdout, stderr io.Writer, attempts int) (string, []byte, error) {
	scanner := bufio.NewScanner(stdin)
	interactive := filename == ""

	for failures := 0; ; {
		if interactive {
			fmt.Fprint(stdout, prompt)
			if !scanner.Scan() {
				fmt.Fprintln(stdout)
				if err := scanner.Err(); err != nil {
					return "", nil, fmt.Errorf("reading stdin: %w", err)
				}
				return "", nil, errNoInput
			}
			filename = strings.TrimSpace(scanner.Text())
		}

		content, err := readFile(filename)
		if err == nil {
			return filename, content, nil
		}

		if errors.Is(err, errNotUTF8) {
			fmt.Fprintf(stderr, "Unsupported encoding in '%s' ... must be UTF-8\n", filename)
		} else {
			fmt.Fprintf(stderr, "Error reading the file ... maybe wrong file name ... don't forget the file extension: %v\n", err)
		}

		if !interactive {
			return "", nil, err
		}

		failures++
		if attempts > 0 && failures >= attempts {
			return "", nil, fmt.Errorf("%w: %d", errTooManyTries, failures)
		}
		fmt.Fprintf(stderr, "Try again ...\n\n")
	}
}

func readFile(filename string) ([]byte, error) {
	if filename == "" {
		return nil, errors.New("empty file name")
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, errNotUTF8
	}
	return content, nil
}

// process compresses content, writes the bit-string to the encoded file,
// decompresses it and writes the reconstruction to the result file.
func process(opts *options, content []byte, stderr io.Writer) (string, []byte, error) {
	result, err := huffman.Compress(content)
	if err != nil {
		return "", nil, fmt.Errorf("compressing: %w", err)
	}

	if opts.verbose && result.Root() != nil {
		table := huffman.BuildCodeTable(result.Root())
		_, _ = result.Root().Dump(stderr)
		_, _ = table.Dump(stderr)
		fmt.Fprintf(stderr, "%d bytes encoded into %d bits\n", len(content), result.Len())
	}

	if err := writeFile(opts.dir, opts.encoded, []byte(result.Bits())); err != nil {
		return "", nil, err
	}

	decoded, err := huffman.Decompress(result)
	if err != nil {
		return "", nil, fmt.Errorf("decompressing: %w", err)
	}

	if err := writeFile(opts.dir, opts.result, decoded); err != nil {
		return "", nil, err
	}
	return result.Bits(), decoded, nil
}

func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
