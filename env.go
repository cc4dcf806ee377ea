package scalp

import (
	"os"

	"github.com/joho/godotenv"
)

// OSEnvironment builds the environment map ParseWith expects
// (spec.md §6 "Environment: a mapping from key to value") from the
// current process environment.
func OSEnvironment() map[string]string {
	return environFromPairs(os.Environ())
}

// DotEnvironment reads a dotenv-formatted file (without mutating the
// process environment) and layers it underneath the current process
// environment: a variable already set in the process wins over one
// only present in the file. This lets a caller seed Environment<P,F>
// fallbacks (spec.md §4.3) from a checked-in ".env" the way the
// teacher's own tests do (cmd/morfx/main_execution_test.go loads
// fixtures through godotenv before exercising CLI parsing).
func DotEnvironment(path string) (map[string]string, error) {
	fromFile, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}
	merged := environFromPairs(os.Environ())
	for key, value := range fromFile {
		if _, set := merged[key]; !set {
			merged[key] = value
		}
	}
	return merged, nil
}

func environFromPairs(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		for i := 0; i < len(pair); i++ {
			if pair[i] == '=' {
				out[pair[:i]] = pair[i+1:]
				break
			}
		}
	}
	return out
}
