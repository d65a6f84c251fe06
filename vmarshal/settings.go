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

import "os"
import "fmt"
import "strings"
import "strconv"
import "github.com/dc0d/onexit"

type SettingsT struct {
	Trace      bool   // write a chrome trace of all dispatches
	TracePrint bool   // echo trace events to stdout
	TraceDir   string // folder for trace_*.json
}

var Settings SettingsT = SettingsT{false, false, ""}

// InitSettings reads VMARSHAL_TRACEDIR, VMARSHAL_TRACEPRINT and VMARSHAL_TRACE
// on top of Settings and applies the result. Call it once at startup; a
// malformed variable panics.
func InitSettings() {
	tracePrint.Store(Settings.TracePrint)
	for _, name := range []string{"TraceDir", "TracePrint", "Trace"} {
		env := "VMARSHAL_" + strings.ToUpper(name)
		if v, ok := os.LookupEnv(env); ok {
			if err := ChangeSetting(name, v); err != nil {
				panic(fmt.Errorf("vmarshal: %s=%q: %w", env, v, err))
			}
		}
	}
	if Settings.Trace && CurrentTrace() == nil {
		if err := SetTrace(true); err != nil {
			panic(err)
		}
	}
	onexit.Register(func() { SetTrace(false) }) // close trace file on exit
	Init()
}

// SettingNames lists the names understood by SettingString and ChangeSetting.
func SettingNames() []string {
	return []string{"Trace", "TracePrint", "TraceDir"}
}

// SettingString renders one setting for humans.
func SettingString(name string) string {
	switch name {
	case "Trace":
		return strconv.FormatBool(Settings.Trace)
	case "TracePrint":
		return strconv.FormatBool(Settings.TracePrint)
	case "TraceDir":
		return Settings.TraceDir
	default:
		panic("unknown setting: " + name)
	}
}

// ChangeSetting changes one setting and applies side effects (opening or
// closing the trace file).
func ChangeSetting(name string, v string) error {
	switch name {
	case "Trace":
		on, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		Settings.Trace = on
		return SetTrace(on)
	case "TracePrint":
		on, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		Settings.TracePrint = on
		tracePrint.Store(on)
	case "TraceDir":
		Settings.TraceDir = v
	default:
		panic("unknown setting: " + name)
	}
	return nil
}
