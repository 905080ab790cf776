package installer

import (
	"fmt"
	"os"
	"strings"
)

// Markers delimiting the alias block in the shell profile. Repeated installs
// rewrite the delimited block in place, so alias lines never accumulate and a
// changed binary path takes effect on reinstall.
const (
	aliasBlockBegin = "# >>> termlock aliases >>>"
	aliasBlockEnd   = "# <<< termlock aliases <<<"
)

// EnsureAliases writes the login/logout alias block to the profile file. An
// existing block is replaced between its markers; an up-to-date block is left
// untouched. It reports whether anything was written. The profile file is
// created when missing.
func EnsureAliases(profilePath, binaryPath string) (bool, error) {
	data, err := os.ReadFile(profilePath)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	content := string(data)
	block := aliasBlock(binaryPath)

	if begin := strings.Index(content, aliasBlockBegin); begin >= 0 {
		// A torn block (begin marker without end) is replaced to end of file.
		end := len(content)
		if i := strings.Index(content[begin:], aliasBlockEnd); i >= 0 {
			end = begin + i + len(aliasBlockEnd)
			if end < len(content) && content[end] == '\n' {
				end++
			}
		}
		if content[begin:end] == block {
			return false, nil
		}
		updated := content[:begin] + block + content[end:]
		if err := os.WriteFile(profilePath, []byte(updated), 0o644); err != nil {
			return false, err
		}
		return true, nil
	}

	f, err := os.OpenFile(profilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		block = "\n" + block
	}
	if _, err := f.WriteString(block); err != nil {
		return false, err
	}
	return true, nil
}

func aliasBlock(binaryPath string) string {
	return fmt.Sprintf("%s\nalias login='%s'\nalias logout='exit'\n%s\n",
		aliasBlockBegin, binaryPath, aliasBlockEnd)
}
