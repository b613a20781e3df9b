package emit

import (
	"bytes"
	"fmt"
	"slices"
	"text/template"

	"sheetgen/internal/literal"
	"sheetgen/internal/schema"
)

// binaryUsings are the namespaces the binary builder body refers to.
var binaryUsings = []string{
	"System",
	"System.IO",
	CollectionsUsing,
	"MasterMemory",
	"MessagePack",
	"MessagePack.Resolvers",
}

type binaryTemplateData struct {
	TypeName   string
	Sealed     bool
	OutputPath string
}

var binaryBuilderTemplate = template.Must(template.New("binary_builder").Parse(`public {{if .Sealed}}sealed {{end}}partial class {{.TypeName}}
{
    /// <summary>
    /// Builds a MasterMemory binary from {{.TypeName}} records and writes it to outputPath.
    /// </summary>
    public static byte[] BuildBinary(IEnumerable<{{.TypeName}}> masters, string outputPath = null)
    {
        if (masters == null) throw new ArgumentNullException(nameof(masters));
        outputPath ??= {{.OutputPath}};

        var messagePackResolvers = CompositeResolver.Create(
            MasterMemoryResolver.Instance,
            StandardResolver.Instance
        );
        var options = MessagePackSerializerOptions.Standard.WithResolver(messagePackResolvers);
        MessagePackSerializer.DefaultOptions = options;

        var builder = new DatabaseBuilder();
        builder.Append(masters);
        var binary = builder.Build();

        var dir = Path.GetDirectoryName(outputPath);
        if (!string.IsNullOrEmpty(dir)) Directory.CreateDirectory(dir);
        File.WriteAllBytes(outputPath, binary);

        return binary;
    }
}
`))

// BinaryBuilderLines renders a partial class with a BuildBinary method that
// serializes the records with MasterMemory. Only the type name and namespace
// of the schema are used.
func BinaryBuilderLines(s *schema.RecordSchema, opts Options) (Lines, error) {
	path := opts.BinaryOutputPath
	if path == "" {
		path = "Assets/Generated/" + s.TypeName + ".bytes"
	}

	var buf bytes.Buffer

	err := binaryBuilderTemplate.Execute(&buf, binaryTemplateData{
		TypeName:   s.TypeName,
		Sealed:     opts.Sealed,
		OutputPath: literal.Quote(path),
	})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	usings := append(slices.Clone(opts.Usings), binaryUsings...)

	return concat(Directives(usings), wrapNamespace(s.Namespace, textLines(buf.String()))), nil
}

// BinaryBuilder renders the binary builder artifact as text.
func BinaryBuilder(s *schema.RecordSchema, opts Options) (string, error) {
	lines, err := BinaryBuilderLines(s, opts)
	if err != nil {
		return "", err
	}

	return Render(lines, opts.NewLine), nil
}
