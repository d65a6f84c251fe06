/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package vmarshal

import (
	"errors"
	"strconv"
	"testing"
)

func restoreSettings(saved SettingsT) {
	ChangeSetting("Trace", "false")
	Settings = saved
	tracePrint.Store(saved.TracePrint)
}

func TestSettings(t *testing.T) {
	saved := Settings
	defer restoreSettings(saved)

	for _, name := range SettingNames() {
		SettingString(name) // must not panic
	}
	if err := ChangeSetting("TracePrint", "true"); err != nil || !Settings.TracePrint {
		t.Errorf("TracePrint: %v %v", err, Settings.TracePrint)
	}
	if !tracePrint.Load() {
		t.Error("TracePrint did not reach the trace writer")
	}
	if SettingString("TracePrint") != "true" {
		t.Error("SettingString does not reflect change")
	}
	if err := ChangeSetting("TracePrint", "maybe"); err == nil {
		t.Error("accepted a non-bool")
	}
	dir := t.TempDir()
	if err := ChangeSetting("TraceDir", dir); err != nil || SettingString("TraceDir") != dir {
		t.Error("TraceDir not applied")
	}
	if err := ChangeSetting("Trace", "1"); err != nil {
		t.Fatal(err)
	}
	if CurrentTrace() == nil {
		t.Error("Trace=1 did not open a trace")
	}
	if err := ChangeSetting("Trace", "0"); err != nil || CurrentTrace() != nil {
		t.Error("Trace=0 did not close the trace")
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("unknown setting accepted")
			}
		}()
		ChangeSetting("Colour", "red")
	}()
}

func TestInitSettingsEnv(t *testing.T) {
	saved := Settings
	defer restoreSettings(saved)

	t.Setenv("VMARSHAL_TRACEDIR", t.TempDir())
	t.Setenv("VMARSHAL_TRACEPRINT", "0")
	t.Setenv("VMARSHAL_TRACE", "1")
	InitSettings()
	if CurrentTrace() == nil || !Settings.Trace {
		t.Error("VMARSHAL_TRACE=1 did not open a trace")
	}
	if Settings.TraceDir == "" {
		t.Error("VMARSHAL_TRACEDIR ignored")
	}
}

func TestInitSettingsMalformed(t *testing.T) {
	saved := Settings
	defer restoreSettings(saved)

	for _, env := range []string{"VMARSHAL_TRACE", "VMARSHAL_TRACEPRINT"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, "maybe")
			defer func() {
				err, _ := recover().(error)
				var numErr *strconv.NumError
				if !errors.As(err, &numErr) {
					t.Errorf("expected a parse error, got %v", err)
				}
			}()
			InitSettings()
		})
	}
}
