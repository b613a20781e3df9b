package gen

import (
	"fmt"
	"strings"
)

// Artifact names one generated source file kind.
type Artifact string

const (
	// ArtifactClass is the record class, with enums inlined unless ArtifactEnums is also requested.
	ArtifactClass Artifact = "class"
	// ArtifactEnums holds the inferred enums on their own.
	ArtifactEnums Artifact = "enums"
	// ArtifactData is the partial class holding the static data list.
	ArtifactData Artifact = "data"
	// ArtifactDataList is the bare data list initializer, for pasting into an existing class.
	ArtifactDataList Artifact = "dataList"
	// ArtifactBinaryBuilder is the MasterMemory binary builder.
	ArtifactBinaryBuilder Artifact = "binaryBuilder"
)

// AllArtifacts lists every artifact in emission order.
var AllArtifacts = []Artifact{ArtifactClass, ArtifactEnums, ArtifactData, ArtifactDataList, ArtifactBinaryBuilder}

// ParseArtifact parses an artifact name, ignoring case.
func ParseArtifact(s string) (Artifact, error) {
	for _, a := range AllArtifacts {
		if strings.EqualFold(strings.TrimSpace(s), string(a)) {
			return a, nil
		}
	}

	return "", fmt.Errorf("unknown artifact %q", s)
}

// ParseArtifacts parses a comma separated artifact list.
func ParseArtifacts(s string) ([]Artifact, error) {
	var out []Artifact

	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		a, err := ParseArtifact(part)
		if err != nil {
			return nil, err
		}

		out = append(out, a)
	}

	return out, nil
}

// DefaultFilename is the file an artifact of typeName is written to.
func (a Artifact) DefaultFilename(typeName string) string {
	switch a {
	case ArtifactEnums:
		return typeName + "_Enums.cs"
	case ArtifactData:
		return typeName + "_DataOnly.cs"
	case ArtifactDataList:
		return typeName + "_DataList.cs"
	case ArtifactBinaryBuilder:
		return typeName + "_BinaryBuilder.cs"
	default:
		return typeName + ".cs"
	}
}
