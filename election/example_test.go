package election_test

import (
	"fmt"

	"github.com/kaerlev/distsim/builder"
	"github.com/kaerlev/distsim/election"
)

// ExampleChangRoberts elects a leader on a five-node ring. Whatever order
// the messages arrive in, the highest id wins.
func ExampleChangRoberts() {
	g, err := builder.Build(nil, builder.Ring(5))
	if err != nil {
		panic(err)
	}

	res, err := election.ChangRoberts(g, nil, election.WithSeed(2024))
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Elected, res.Leader)
	// Output: true p4
}
