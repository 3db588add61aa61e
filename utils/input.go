package utils

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// Stdin is the reserved file name that selects standard input.
const Stdin = "-"

// ReadInput returns the full contents of the named file, or of standard
// input when name is empty or Stdin.
func ReadInput(name string) ([]byte, error) {
	if name == "" || name == Stdin {
		data, err := ioutil.ReadAll(os.Stdin)
		return data, errors.Wrap(err, "error reading stdin")
	}

	data, err := ioutil.ReadFile(name)
	return data, errors.Wrapf(err, "error reading %s", name)
}
