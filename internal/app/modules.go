package app

import (
	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/modules/control"
	"github.com/Jvavscratch/utils/modules/data"
	"github.com/Jvavscratch/utils/modules/events"
	"github.com/Jvavscratch/utils/modules/looks"
	"github.com/Jvavscratch/utils/modules/operators"
	"github.com/Jvavscratch/utils/modules/procedures"
	"github.com/Jvavscratch/utils/modules/sensing"
)

// coreModules is the definitive list of all opcode families compiled into
// the binary.
var coreModules = []codegen.Module{
	&events.Module{},
	&control.Module{},
	&data.Module{},
	&operators.Module{},
	&looks.Module{},
	&procedures.Module{},
	&sensing.Module{},
}
