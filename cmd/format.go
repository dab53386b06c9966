package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Source code formatting wrapper around clang-format. This tool is wholly
// separate from the federate configuration library: it formats the C/C++
// model code of the host simulation tree (include/, source/, models/*).

var (
	formatClean   bool
	formatFile    string
	formatInPlace bool
	formatLLVMBin string
	formatHome    string
	formatTest    bool
	formatVerbose bool
)

// formatSpecName is the clang-format style file linked into each formatted
// directory so clang-format -style=file picks it up.
const formatSpecName = ".clang-format"

// formattedDirName is the sibling directory formatted output is written to
// when not formatting in place.
const formattedDirName = "formatted"

var sourceExtensions = map[string]bool{
	".hh": true, ".h": true, ".cpp": true, ".cc": true, ".c": true,
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Apply the code format standard to the simulation source tree",
	Run: func(cmd *cobra.Command, args []string) {
		// Incompatible flag combinations fail fast, before touching anything.
		if formatInPlace && formatClean {
			logrus.Fatalf("The --in-place and --clean options are incompatible")
		}
		if formatFile != "" && formatClean {
			logrus.Fatalf("The --file and --clean options are incompatible")
		}

		home := formatHome
		if home == "" {
			home = os.Getenv("FEDCONFIG_HOME")
		}
		if home == "" {
			logrus.Fatalf("FEDCONFIG_HOME not set and no --home given")
		}
		if fi, err := os.Stat(home); err != nil || !fi.IsDir() {
			logrus.Fatalf("Home directory not found: %s", home)
		}

		paths, err := sourcePaths(home)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		if formatClean {
			for _, p := range paths {
				if err := cleanArtifacts(p, formatTest, formatVerbose); err != nil {
					logrus.Fatalf("Cleanup failed: %v", err)
				}
			}
			return
		}

		clangFormat, err := findClangFormat(formatLLVMBin)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if formatVerbose {
			logrus.Infof("Using clang-format: %s", clangFormat)
		}

		// A single file is always processed in place.
		if formatFile != "" {
			if err := formatOneFile(clangFormat, formatFile, true, formatTest, formatVerbose); err != nil {
				logrus.Fatalf("Format failed: %v", err)
			}
			return
		}

		spec := filepath.Join(home, "scripts", formatSpecName)
		for _, p := range paths {
			if err := formatDirectory(clangFormat, spec, p, formatInPlace, formatTest, formatVerbose); err != nil {
				logrus.Fatalf("Format failed: %v", err)
			}
		}
	},
}

// sourcePaths returns the fixed top-level directories the formatter
// processes: include, source, and every subdirectory of models. A missing
// directory is an error, not a skip.
func sourcePaths(home string) ([]string, error) {
	for _, required := range []string{"include", "source", "models", "scripts"} {
		if fi, err := os.Stat(filepath.Join(home, required)); err != nil || !fi.IsDir() {
			return nil, fmt.Errorf("could not find the %q directory under %s", required, home)
		}
	}
	paths := []string{
		filepath.Join(home, "include"),
		filepath.Join(home, "source"),
	}
	entries, err := os.ReadDir(filepath.Join(home, "models"))
	if err != nil {
		return nil, fmt.Errorf("reading models directory: %w", err)
	}
	for _, e := range entries {
		// Only interested in directories.
		if e.IsDir() {
			paths = append(paths, filepath.Join(home, "models", e.Name()))
		}
	}
	return paths, nil
}

// findClangFormat locates the clang-format binary: an explicit LLVM bin
// path wins, then $LLVM_HOME/bin, then $PATH, then the usual install
// locations.
func findClangFormat(llvmBin string) (string, error) {
	var candidates []string
	if llvmBin != "" {
		candidates = append(candidates, filepath.Join(llvmBin, "clang-format"))
	}
	if llvmHome := os.Getenv("LLVM_HOME"); llvmHome != "" {
		candidates = append(candidates, filepath.Join(llvmHome, "bin", "clang-format"))
	}
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			return c, nil
		}
	}
	if path, err := exec.LookPath("clang-format"); err == nil {
		return path, nil
	}
	for _, dir := range []string{"/usr/bin", "/usr/local/bin", "/opt/homebrew/bin"} {
		c := filepath.Join(dir, "clang-format")
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("no clang-format command found")
}

// isSourceFile reports whether name has one of the formatted extensions.
func isSourceFile(name string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(name))]
}

// formattedOutputPath returns where the formatted copy of file goes when
// not formatting in place: a sibling formatted/ directory.
func formattedOutputPath(file string) string {
	return filepath.Join(filepath.Dir(file), formattedDirName, filepath.Base(file))
}

func formatOneFile(clangFormat, file string, inPlace, testOnly, verbose bool) error {
	if fi, err := os.Stat(file); err != nil || fi.IsDir() {
		return fmt.Errorf("file not found: %s", file)
	}
	if testOnly {
		logrus.Infof("Would format: %s", file)
		return nil
	}
	if verbose {
		logrus.Infof("Formatting: %s", file)
	}

	if inPlace {
		out, err := exec.Command(clangFormat, "-style=file", "-i", file).CombinedOutput()
		if err != nil {
			return fmt.Errorf("clang-format %s: %v: %s", file, err, out)
		}
		return nil
	}

	out, err := exec.Command(clangFormat, "-style=file", file).Output()
	if err != nil {
		return fmt.Errorf("clang-format %s: %w", file, err)
	}
	dest := formattedOutputPath(file)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, out, 0o644)
}

// formatDirectory links the format spec into every directory under root
// that holds source files, then formats each file.
func formatDirectory(clangFormat, spec, root string, inPlace, testOnly, verbose bool) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == formattedDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if !isSourceFile(d.Name()) {
			return nil
		}
		if err := linkFormatSpec(spec, filepath.Dir(path), testOnly, verbose); err != nil {
			return err
		}
		return formatOneFile(clangFormat, path, inPlace, testOnly, verbose)
	})
}

// linkFormatSpec symlinks the format spec into dir so clang-format's
// style=file lookup resolves there.
func linkFormatSpec(spec, dir string, testOnly, verbose bool) error {
	link := filepath.Join(dir, formatSpecName)
	if _, err := os.Lstat(link); err == nil {
		return nil
	}
	if testOnly {
		logrus.Infof("Would link %s -> %s", link, spec)
		return nil
	}
	if verbose {
		logrus.Infof("Linking %s -> %s", link, spec)
	}
	return os.Symlink(spec, link)
}

// cleanArtifacts removes formatted/ directories and format spec symlinks
// under root.
func cleanArtifacts(root string, testOnly, verbose bool) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == formattedDirName {
			if testOnly {
				logrus.Infof("Would remove: %s", path)
				return filepath.SkipDir
			}
			if verbose {
				logrus.Infof("Removing: %s", path)
			}
			if err := os.RemoveAll(path); err != nil {
				return err
			}
			return filepath.SkipDir
		}
		if !d.IsDir() && d.Name() == formatSpecName && d.Type()&fs.ModeSymlink != 0 {
			if testOnly {
				logrus.Infof("Would remove: %s", path)
				return nil
			}
			if verbose {
				logrus.Infof("Removing: %s", path)
			}
			return os.Remove(path)
		}
		return nil
	})
}

func init() {
	formatCmd.Flags().BoolVarP(&formatClean, "clean", "c", false, "Clean up all code formatting artifacts")
	formatCmd.Flags().StringVarP(&formatFile, "file", "f", "", "Process a single file in place")
	formatCmd.Flags().BoolVarP(&formatInPlace, "in-place", "i", false, "Format the source code in place")
	formatCmd.Flags().StringVarP(&formatLLVMBin, "llvm-bin", "l", "", "Path to LLVM binaries")
	formatCmd.Flags().StringVarP(&formatHome, "home", "p", "", "Path to the simulation source tree (default $FEDCONFIG_HOME)")
	formatCmd.Flags().BoolVarP(&formatTest, "test", "t", false, "Do not format, just show what would be done")
	formatCmd.Flags().BoolVarP(&formatVerbose, "verbose", "v", false, "Generate verbose output")

	rootCmd.AddCommand(formatCmd)
}
