package filing

import (
	"strings"

	"github.com/JonMunkholm/fecparse/internal/schema"
)

// headerSignature is the first field of a filing's first line.
const headerSignature = "HDR"

// SupportedVersions lists the header versions the engine understands.
var SupportedVersions = []string{"6.4", "7.0", "8.0"}

// ValidateHeader checks the first two lines of a filing.
//
// The checks run in order and stop at the first failure:
//  1. line 1, field 0 (quotes stripped) must be HDR
//  2. line 1, field 2 (quotes and whitespace stripped) must be a supported version
//  3. line 2, field 0 (quotes stripped) must be a supported form type
//
// Missing lines or fields are treated as empty values.
func ValidateHeader(imageID, line1, line2 string) (Header, Outcome) {
	first := strings.Split(line1, Delimiter)
	if strings.Trim(field(first, 0), `"`) != headerSignature {
		return Header{}, Reject(ReasonInvalidHeader, "")
	}

	version := strings.Trim(strings.Trim(field(first, 2), `"`), asciiSpace)
	if !isSupportedVersion(version) {
		return Header{}, Reject(ReasonUnsupportedVersion, version)
	}

	second := strings.Split(line2, Delimiter)
	formType := strings.Trim(field(second, 0), `"`)
	layout, ok := schema.HeaderFor(formType)
	if !ok {
		return Header{}, Reject(ReasonUnsupportedFormType, formType)
	}

	return Header{
		ImageID:  imageID,
		Version:  version,
		FormType: formType,
		Layout:   layout,
		Fields:   second,
	}, Accept()
}

func isSupportedVersion(v string) bool {
	for _, s := range SupportedVersions {
		if v == s {
			return true
		}
	}
	return false
}

// field returns fields[i], or "" when the line is too short.
func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
