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
/*
	vmarshal calls native callbacks with a runtime determined argument list

*/
package main

import "os"
import "io"
import "fmt"
import "flag"
import "syscall"
import "os/signal"
import "github.com/chzyer/readline"
import "github.com/dc0d/onexit"
import "github.com/launix-de/vmarshal/vmarshal"

const newprompt = "\033[32m>\033[0m "

var replInstance *readline.Instance

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return "dummy"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func main() {
	fmt.Print(`vmarshal Copyright (C) 2026   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

`)

	// parse command line options
	var libs, commands arrayFlags
	flag.Var(&libs, "l", "Load shared library (repeatable)")
	flag.Var(&commands, "c", "Execute shell command (repeatable)")
	watch := flag.Bool("watch", false, "Reload libraries when they change on disk")
	trace := flag.Bool("trace", false, "Write a chrome trace of all dispatches")
	flag.Parse()

	if *trace {
		vmarshal.Settings.Trace = true
	}
	vmarshal.InitSettings()
	onexit.Register(unloadLibraries)
	onexit.Register(stopWatcher)
	if *watch {
		startWatcher()
	}

	for _, lib := range libs {
		fmt.Println("Loading " + lib + " ...")
		if err := loadLibrary(lib); err != nil {
			fmt.Println(err)
		}
	}
	for _, command := range commands {
		fmt.Println("Executing " + command + " ...")
		if err := runLine(os.Stdout, command); err == errExit {
			exitroutine()
			return
		} else if err != nil {
			fmt.Println("error:", err)
		}
	}

	// install exit handler
	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM)
	go (func() {
		<-cancelChan
		exitroutine()
		os.Exit(1)
	})()

	fmt.Print(`

    Type help to show help

`)
	repl()

	// normal shutdown
	exitroutine()
}

func repl() {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".vmarshal-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	replInstance = l
	defer l.Close()
	l.CaptureExitSignal()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		err = runLine(l.Stdout(), line)
		if err == errExit {
			break
		} else if err != nil {
			fmt.Fprintln(l.Stdout(), "error:", err)
		}
	}
}

func exitroutine() {
	fmt.Println("Exit procedure...")
	if replInstance != nil {
		// in case it dosen't exit properly
		replInstance.Close()
	}
	onexit.Done()
	fmt.Println("Exit procedure finished")
}
