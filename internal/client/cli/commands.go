package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/introapp/freshintro/internal/client/models"
	"github.com/introapp/freshintro/internal/client/wizard"
)

func (a *App) show(ctx context.Context) {
	d := a.drafts.Draft()
	step := a.drafts.Step()

	fmt.Printf("Step %d/3 — %s\n", int(step), step)

	switch step {
	case wizard.StepBasicInfo:
		fmt.Printf("  Branch: %s\n  Batch:  %s\n  Hostel: %s\n", orDash(d.Branch), orDash(d.Batch), orDash(d.Hostel))
		a.showPhotos(ctx)
	case wizard.StepAboutYou:
		fmt.Printf("  Bio: %s\n", orDash(d.Bio))
		fmt.Printf("  Interests: %v\n  Hobbies: %v\n  Socials: %v\n", d.Interests, d.Hobbies, d.Socials)
	case wizard.StepConfirm:
		fmt.Printf("  Bio: %s\n  Branch: %s\n  Batch: %s\n  Hostel: %s\n", orDash(d.Bio), orDash(d.Branch), orDash(d.Batch), orDash(d.Hostel))
		fmt.Printf("  Interests: %v\n  Hobbies: %v\n  Socials: %v\n", d.Interests, d.Hobbies, d.Socials)
		a.showPhotos(ctx)
		fmt.Println("Type 'submit' to publish your profile.")
	}
}

func (a *App) showPhotos(ctx context.Context) {
	imgs, err := a.drafts.Images(ctx)
	if err != nil {
		fmt.Println("  Photos: (unavailable:", err, ")")
		return
	}
	fmt.Printf("  Photos (%d):\n", len(imgs))
	for i, img := range imgs {
		fmt.Printf("    %d. %s (%d bytes)\n", i+1, img.Name, len(img.Data))
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func (a *App) editBio(ctx context.Context) {
	bio, err := GetMultiline(a.reader, "Tell us about yourself", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return
	}
	a.drafts.SetBio(bio)
}

func (a *App) addPhoto(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	img := models.NewStagedImage(filepath.Base(path), contentType, data)
	if err := a.drafts.AddImages(ctx, []models.StagedImage{img}); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Staged %s\n", img.Name)
}

// movePhoto moves the photo at 1-based position from to position to,
// shifting the others, and re-synchronizes the stored order.
func (a *App) movePhoto(ctx context.Context, fromArg, toArg string) {
	from, err1 := strconv.Atoi(fromArg)
	to, err2 := strconv.Atoi(toArg)
	if err1 != nil || err2 != nil {
		fmt.Println("Usage: move <from> <to>")
		return
	}

	imgs, err := a.drafts.Images(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}

	perm := movePerm(len(imgs), from-1, to-1)
	if perm == nil {
		fmt.Println("Positions out of range.")
		return
	}
	if err := a.drafts.Reorder(ctx, perm); err != nil {
		fmt.Println(err)
	}
}

// movePerm builds the permutation that moves index from to index to in a
// sequence of n items. Returns nil when the positions are out of range.
func movePerm(n, from, to int) []int {
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil
	}

	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i != from {
			order = append(order, i)
		}
	}
	order = append(order[:to], append([]int{from}, order[to:]...)...)
	return order
}
