package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nillionnetwork/nada-data-go/internal/manifest"
	"github.com/nillionnetwork/nada-data-go/pkg/array"
	"github.com/nillionnetwork/nada-data-go/pkg/logging"
	"github.com/nillionnetwork/nada-data-go/pkg/nada"
	"github.com/nillionnetwork/nada-data-go/pkg/provenance"
)

func main() {
	manifestPath := flag.String("manifest", "", "path to a program manifest JSON file")
	flag.Parse()

	log.Printf("nada-data-go version: %s", nada.LibraryVersion())

	if *manifestPath == "" {
		fmt.Fprintln(os.Stderr, "usage: nada-array -manifest <file>")
		os.Exit(2)
	}

	ctx := context.Background()
	logger := logging.New(nil)

	m, err := manifest.Load(*manifestPath)
	if err != nil {
		log.Fatalf("load manifest: %v", err)
	}
	logger.Info(ctx, "manifest loaded", "parties", len(m.Parties), "arrays", len(m.Arrays))

	parties := make(map[string]*nada.Party, len(m.Parties))
	for _, name := range m.Parties {
		parties[name] = &nada.Party{Name: name}
	}

	var all []*array.Array
	for _, decl := range m.Arrays {
		arr, err := array.AuditInputs(make([]int64, decl.Length), parties[decl.Party], decl.Prefix)
		if err != nil {
			log.Fatalf("build input array %q: %v", decl.Prefix, err)
		}
		logger.Info(ctx, "array built",
			"party", decl.Party,
			"prefix", decl.Prefix,
			"summary", arr.String(),
			logging.Redacted("values"),
		)
		all = append(all, arr)
	}

	if len(all) == 0 {
		fmt.Println("manifest declares no arrays")
		return
	}

	combined := all[0]
	for _, arr := range all[1:] {
		combined = combined.Concat(arr)
	}
	fmt.Printf("combined: %s\n", combined)

	total, err := combined.Sum()
	if err != nil {
		log.Fatalf("sum: %v", err)
	}
	fmt.Printf("sum provenance: %v\n", provenance.Of(total).Sorted())
}
