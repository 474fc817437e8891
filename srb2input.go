// This file is part of srb2input.
//
// srb2input is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// srb2input is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with srb2input.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/srb2star/srb2input/assert"
	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/config"
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/keys"
	"github.com/srb2star/srb2input/logger"
	"github.com/srb2star/srb2input/modalflag"
	"github.com/srb2star/srb2input/paths"
	"github.com/srb2star/srb2input/prefs"
	"github.com/srb2star/srb2input/schemes"
	"github.com/srb2star/srb2input/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode handles CTRL-C
	// itself. for example, the BIND mode reads CTRL-C from the terminal in
	// raw mode.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// Servicer is anything that must be created, serviced and destroyed on the
// main thread. SDL requires window and event handling to happen there.
type Servicer interface {
	Destroy(io.Writer)

	// Service() should not loop longer than necessary. It MUST ONLY be called
	// from the main thread.
	Service()
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (Servicer, error)

	// the result of creator is returned on one of these two channels
	creation      chan Servicer
	creationError chan error
}

// #mainthread
func main() {
	assert.SetMainThread()

	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (Servicer, error)),
		creation:      make(chan Servicer),
		creationError: make(chan error),
	}

	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var svc Servicer
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if svc != nil {
				svc.Destroy(os.Stderr)
			}

			s, err := creator()
			if err != nil {
				// leave svc as a nil interface rather than an interface
				// holding a nil pointer
				svc = nil
				sync.creationError <- err
			} else {
				svc = s
				sync.creation <- svc
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if svc != nil {
				svc.Service()
			}
		}
	}

	if svc != nil {
		svc.Destroy(os.Stderr)
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// request a servicer and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("CHECK", "DEFAULT", "BIND", "EXPORT", "IMPORT", "DUMP", "TRY", "VERSION")
	md.AdditionalHelp("config files are looked for in the resource directory if no path is given")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "CHECK":
		err = check(md, os.Stdout)
	case "DEFAULT":
		err = writeDefaults(md, os.Stdout)
	case "BIND":
		err = bind(md, sync)
	case "EXPORT":
		err = export(md, os.Stdout)
	case "IMPORT":
		err = importJSON(md, os.Stdout)
	case "DUMP":
		err = dump(md, os.Stdout)
	case "TRY":
		err = try(md, sync)
	case "VERSION":
		err = showVersion(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to every mode that reads a config file.
type commonFlags struct {
	scheme *string
	prefs  *string
	log    *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		scheme: md.AddString("scheme", schemes.FPS.String(), "default control scheme: FPS, Platform"),
		prefs:  md.AddString("prefs", "", "preference overrides, eg. input.mousesens::30; touch.touch_camera::false"),
		log:    md.AddBool("log", false, "echo log to stdout"),
	}
}

// session for the common flags. the preferences file in the resource
// directory is used.
func (cf commonFlags) session(out io.Writer) (*session, error) {
	if *cf.log {
		logger.SetEcho(out)
	} else {
		logger.SetEcho(nil)
	}

	id, ok := schemes.Lookup(*cf.scheme)
	if !ok || id == schemes.Custom {
		return nil, fmt.Errorf("unknown control scheme (%s)", *cf.scheme)
	}

	if *cf.prefs != "" {
		prefs.PushCommandLineStack(*cf.prefs)
	}

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	return newSession(id, pth, out)
}

// configPath returns the argument as the path to a config file. the default
// config file in the resource directory is used if the argument is empty.
func configPath(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	return paths.ResourcePath("", config.DefaultConfigFile)
}

func check(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()
	cf := addCommonFlags(md)
	verbose := md.AddBool("verbose", false, "list every binding")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := cf.session(out)
	if err != nil {
		return err
	}

	pth, err := configPath(md.GetArg(0))
	if err != nil {
		return err
	}
	err = s.load(pth, false)
	if err != nil {
		return err
	}

	report(s.set, out, *verbose)
	return nil
}

// report describes the binding set. the scheme of each player's table is
// given for the whole table and for the movement controls.
func report(set *bindings.Set, out io.Writer, verbose bool) {
	fmt.Fprintf(out, "control per key: %s\n", set.Mode)

	for p := bindings.Player1; p < bindings.NumPlayers; p++ {
		tbl := set.Table(p)

		fmt.Fprintf(out, "%s: scheme %s (movement %s)\n", p,
			schemes.Classify(tbl, p, nil),
			schemes.Classify(tbl, p, controls.Movement))

		used := make(map[keys.Code][]string)
		for _, c := range controls.All() {
			pair := tbl.Bound(c)
			if verbose && !pair.Unbound() {
				fmt.Fprintf(out, "  %-16s %s\n", c.Name(), pairString(pair))
			}
			for _, k := range pair {
				if k != keys.Null {
					used[k] = append(used[k], c.Name())
				}
			}
		}

		for _, k := range sortedCodes(used) {
			if len(used[k]) > 1 {
				fmt.Fprintf(out, "  %s is bound to %s\n", k.Name(), strings.Join(used[k], ", "))
			}
		}
	}
}

func pairString(pair bindings.Pair) string {
	if pair[1] == keys.Null {
		return pair[0].Name()
	}
	if pair[0] == keys.Null {
		return fmt.Sprintf("(none), %s", pair[1].Name())
	}
	return fmt.Sprintf("%s, %s", pair[0].Name(), pair[1].Name())
}

func sortedCodes(m map[keys.Code][]string) []keys.Code {
	l := make([]keys.Code, 0, len(m))
	for i := range keys.NumInputs {
		k := keys.Code(i)
		if _, ok := m[k]; ok {
			l = append(l, k)
		}
	}
	return l
}

func writeDefaults(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()
	cf := addCommonFlags(md)
	force := md.AddBool("force", false, "replace an existing config file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := cf.session(out)
	if err != nil {
		return err
	}

	pth, err := configPath(md.GetArg(0))
	if err != nil {
		return err
	}

	if !*force {
		if _, err := os.Stat(pth); err == nil {
			return fmt.Errorf("%s already exists. use -force to replace it", pth)
		}
	}

	err = s.interp.Save(pth)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s scheme written to %s\n", *cf.scheme, pth)
	return nil
}

func export(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()
	cf := addCommonFlags(md)
	save := md.AddBool("save", false, "write to a new file in the resource directory if no json file is given")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var cfg, dest string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		cfg = md.GetArg(0)
	case 2:
		cfg = md.GetArg(0)
		dest = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := cf.session(out)
	if err != nil {
		return err
	}

	pth, err := configPath(cfg)
	if err != nil {
		return err
	}
	err = s.load(pth, false)
	if err != nil {
		return err
	}

	data, err := config.ExportJSON(s.set)
	if err != nil {
		return err
	}

	if dest == "" && *save {
		dest, err = paths.ResourcePath("exports", paths.UniqueFilename("export", "bindings", "json"))
		if err != nil {
			return err
		}
	}

	if dest == "" {
		_, err = out.Write(append(data, '\n'))
		return err
	}

	err = os.WriteFile(dest, data, 0o644)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "bindings written to %s\n", dest)
	return nil
}

func importJSON(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()
	cf := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var src, cfg string
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("json file required for %s mode", md)
	case 1:
		src = md.GetArg(0)
	case 2:
		src = md.GetArg(0)
		cfg = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	s, err := cf.session(out)
	if err != nil {
		return err
	}

	pth, err := configPath(cfg)
	if err != nil {
		return err
	}

	// variables that are not in the json file keep the values they have in
	// the existing config
	err = s.load(pth, true)
	if err != nil {
		return err
	}

	err = config.ImportJSON(s.set, data)
	if err != nil {
		return err
	}

	err = s.interp.Save(pth)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "bindings from %s written to %s\n", src, pth)
	return nil
}

func dump(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()
	cf := addCommonFlags(md)
	dot := md.AddString("dot", "", "write the graph to a file rather than stdout")
	save := md.AddBool("save", false, "write the graph to a new file in the resource directory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := cf.session(out)
	if err != nil {
		return err
	}

	pth, err := configPath(md.GetArg(0))
	if err != nil {
		return err
	}
	err = s.load(pth, true)
	if err != nil {
		return err
	}

	if *save && *dot == "" {
		*dot, err = paths.ResourcePath("dumps", paths.UniqueFilename("dump", "bindings", "dot"))
		if err != nil {
			return err
		}
	}

	w := out
	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	memviz.Map(w, s.set)
	if *dot != "" {
		fmt.Fprintf(out, "graph written to %s\n", *dot)
	}
	return nil
}

func showVersion(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintln(out, ver)
	if *revision {
		fmt.Fprintln(out, rev)
	}
	fmt.Fprintf(out, "config version %s\n", version.LatestExecVersion)

	return nil
}
