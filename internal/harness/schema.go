package harness

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
)

// scenarioSchema constrains the shape of scenario documents. Definitions are
// closed, so unknown keys are rejected.
const scenarioSchema = `
#ListOp: "nonEmpty" | "isEmpty" | "len" | "head" | "randomElement" |
	"forall" | "exists" | "foldLeft" | "map" | "get" | "set"

#DateOp: "timestamp" | "day" | "month" | "equals" | "notEquals" |
	"upper" | "lower" | "upperOrEquals" | "lowerOrEquals" | "compare"

#Step: {
	op:      #ListOp | #DateOp
	list?:   null | [...int]
	date?:   string & !=""
	other?:  string & !=""
	fn?:     string & !=""
	init?:   int
	index?:  int
	value?:  int
	expect?: null | bool | int | [...int]
	error?:  string & !=""
}

#Scenario: {
	name:        string & !=""
	description: string & !=""
	steps: [#Step, ...#Step]
}
`

var (
	schemaOnce sync.Once
	schemaCtx  *cue.Context
	schemaDef  cue.Value
	schemaErr  error

	// cue.Context is not safe for concurrent use.
	schemaMu sync.Mutex
)

func loadSchema() (*cue.Context, cue.Value, error) {
	schemaOnce.Do(func() {
		schemaCtx = cuecontext.New()
		v := schemaCtx.CompileString(scenarioSchema, cue.Filename("scenario.cue"))
		if err := v.Err(); err != nil {
			schemaErr = fmt.Errorf("compile scenario schema: %w", err)
			return
		}
		schemaDef = v.LookupPath(cue.ParsePath("#Scenario"))
		if err := schemaDef.Err(); err != nil {
			schemaErr = fmt.Errorf("lookup #Scenario: %w", err)
		}
	})
	return schemaCtx, schemaDef, schemaErr
}

// ValidateDocument checks a YAML scenario document against the scenario
// schema. filename is used in error positions.
func ValidateDocument(filename string, data []byte) error {
	ctx, def, err := loadSchema()
	if err != nil {
		return err
	}

	schemaMu.Lock()
	defer schemaMu.Unlock()

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return fmt.Errorf("parse YAML: %w", err)
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("build document: %w", err)
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s", cueerrors.Details(err, nil))
	}
	return nil
}
