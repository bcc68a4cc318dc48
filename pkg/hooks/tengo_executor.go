package hooks

import (
	"context"
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
)

// TengoExecutor handles the execution of Tengo scripts.
type TengoExecutor struct {
	scripts map[HookType]string
	mutex   sync.RWMutex
}

// NewTengoExecutor creates a new Tengo script executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{
		scripts: make(map[HookType]string),
	}
}

var _ HookManager = (*TengoExecutor)(nil)

// Execute runs the specified hooks type with the given context.
// Scripts see prefix, dataRoot, downloadDir, extractDir and every entry of hc.Vars,
// and report failure by defining err.
func (e *TengoExecutor) Execute(ctx context.Context, hookType HookType, hc HookContext) error {
	e.mutex.RLock()
	script, exists := e.scripts[hookType]
	e.mutex.RUnlock()
	if !exists {
		return nil
	}

	scriptInstance := tengo.NewScript([]byte(script))
	scriptInstance.SetImports(stdlib.GetModuleMap("fmt", "os", "strings", "text", "time"))

	vars := map[string]interface{}{
		"prefix":      hc.Prefix,
		"dataRoot":    hc.DataRoot,
		"downloadDir": hc.DownloadDir,
		"extractDir":  hc.ExtractDir,
	}
	for k, v := range hc.Vars {
		vars[k] = v
	}
	for k, v := range vars {
		if err := scriptInstance.Add(k, v); err != nil {
			return fmt.Errorf("failed to add variable '%s' to script: %w", k, err)
		}
	}

	compiled, err := scriptInstance.RunContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", hookType, pkgerrors.ErrHookExecution, err)
	}

	errVar := compiled.Get("err")
	if errVar != nil {
		switch v := errVar.Value().(type) {
		case error:
			return fmt.Errorf("%s: %w: %w", hookType, pkgerrors.ErrHookScript, v)
		case string:
			if v != "" {
				return fmt.Errorf("%s: %w: %s", hookType, pkgerrors.ErrHookScript, v)
			}
		}
	}

	return nil
}

// AddHook adds or replaces the script for hook.Type.
func (e *TengoExecutor) AddHook(hook Hook) error {
	if hook.Type == "" {
		return ErrHookTypeEmpty
	}
	if !hook.Type.IsValid() {
		return ErrUnsupportedHookEvent(string(hook.Type))
	}
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.scripts[hook.Type] = hook.Content
	return nil
}

// RemoveHook removes the script for the specified hooks type.
func (e *TengoExecutor) RemoveHook(hookType HookType) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if _, ok := e.scripts[hookType]; !ok {
		return ErrUnsupportedHookEvent(string(hookType))
	}
	delete(e.scripts, hookType)
	return nil
}

// HasHook checks if a script exists for the specified hooks type.
func (e *TengoExecutor) HasHook(hookType HookType) bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	_, exists := e.scripts[hookType]
	return exists
}
