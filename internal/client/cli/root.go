package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (a *App) getStatus() string {
	s := a.drafts.Step().String()
	if a.degraded {
		s += ", memory only"
	}
	return fmt.Sprintf("(%s)", s)
}

// Root runs the editor REPL until EOF or an explicit exit.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Freshers Intro profile editor (type 'help' for commands)")

	for {
		fmt.Printf("intro %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Editing:    bio, branch, batch, hostel, social, interest, uninterest, hobby, unhobby")
			fmt.Println("Photos:     photo <path>, unphoto <n>, move <from> <to>")
			fmt.Println("Wizard:     show, next, back, submit")
			fmt.Println("Session:    discard, exit")

		case "show":
			a.show(ctx)

		case "bio":
			a.editBio(ctx)

		case "branch":
			a.drafts.SetBranch(strings.Join(args, " "))
		case "batch":
			a.drafts.SetBatch(strings.Join(args, " "))
		case "hostel":
			a.drafts.SetHostel(strings.Join(args, " "))

		case "social":
			if len(args) == 0 {
				fmt.Println("Usage: social <platform> [handle]   (no handle removes the entry)")
				continue
			}
			handle := ""
			if len(args) > 1 {
				handle = args[1]
			}
			a.drafts.SetSocial(args[0], handle)

		case "interest":
			if err := a.drafts.AddInterest(strings.Join(args, " ")); err != nil {
				fmt.Println(err)
			}
		case "uninterest":
			a.drafts.RemoveInterest(strings.Join(args, " "))

		case "hobby":
			if err := a.drafts.AddHobby(strings.Join(args, " ")); err != nil {
				fmt.Println(err)
			}
		case "unhobby":
			a.drafts.RemoveHobby(strings.Join(args, " "))

		case "photo":
			if len(args) == 0 {
				fmt.Println("Usage: photo <path>")
				continue
			}
			a.addPhoto(ctx, args[0])

		case "unphoto":
			if len(args) == 0 {
				fmt.Println("Usage: unphoto <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Println("Usage: unphoto <n>")
				continue
			}
			if err := a.drafts.RemoveImage(ctx, n-1); err != nil {
				fmt.Println(err)
			}

		case "move":
			if len(args) != 2 {
				fmt.Println("Usage: move <from> <to>")
				continue
			}
			a.movePhoto(ctx, args[0], args[1])

		case "next":
			a.drafts.Next(ctx)
			a.show(ctx)
		case "back":
			a.drafts.Back(ctx)
			a.show(ctx)

		case "submit":
			if err := a.drafts.Submit(ctx); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("Profile submitted!")

		case "discard":
			ok, err := GetSimpleText(a.reader, "Discard the whole draft? (yes/no)", os.Stdout)
			if err == nil && ok == "yes" {
				a.drafts.Reset(ctx)
				fmt.Println("Draft discarded.")
			}

		case "exit", "quit":
			fmt.Println("Your draft is saved; see you next time!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
