package ids_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/HolographicTripwire/ids"
	"github.com/HolographicTripwire/ids/idset"
)

type Person struct {
	id   ids.ID32
	Name string
}

func (p *Person) ID() ids.ID32      { return p.id }
func (p *Person) SetID(id ids.ID32) { p.id = id }

// Example_tracker stores objects, removes one and closes the gap.
func Example_tracker() {
	people := ids.New[ids.ID32, *Person]()

	alice, _ := people.Put(&Person{Name: "alice"})
	_, bob := people.Put(&Person{Name: "bob"})
	people.Put(&Person{Name: "carol"})

	people.Remove(alice)
	mapping, err := people.Flatten()
	if err != nil {
		panic(err)
	}

	_ = bob.Do(func(p *Person) error {
		fmt.Printf("%s is now %d\n", p.Name, p.ID())
		return nil
	})
	fmt.Println(len(mapping), people.Len())
	// Output:
	// bob is now 0
	// 2 2
}

// Example_flattenWith keeps a membership set in step with the tracker.
func Example_flattenWith() {
	people := ids.New[ids.ID32, *Person]()
	for _, name := range []string{"a", "b", "c", "d"} {
		people.Put(&Person{Name: name})
	}

	admins := idset.New[ids.ID32](1, 3)
	people.Remove(0)
	people.Remove(2)

	if _, err := people.FlattenWith(admins); err != nil {
		panic(err)
	}
	fmt.Println(slices.Collect(admins.All()))
	// Output: [0 1]
}

// Example_linker links two identifier spaces.
func Example_linker() {
	links := ids.NewLinker[ids.ID32, ids.ID16]()
	links.Insert(4, 9)

	r, _ := links.GetByLeft(4)
	fmt.Println(r)

	links.RightUpdater().UpdateIDs(ids.Remapping[ids.ID16]{9: 0})
	r, _ = links.GetByLeft(4)
	fmt.Println(r)
	// Output:
	// 9
	// 0
}

// ExampleFromIndex shows the checked conversion from a slice index.
func ExampleFromIndex() {
	_, err := ids.FromIndex[ids.ID8](300)
	fmt.Println(errors.Is(err, ids.ErrOutOfRange))
	// Output: true
}
