package catalog_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/latex3d/catalog"
	"github.com/katalvlaran/latex3d/geom"
)

// ExampleSubstituter_Run replaces a placeholder inside a line of text.
func ExampleSubstituter_Run() {
	c := catalog.Catalog{Items: []catalog.Item{{Code: "122101", Family: "triangle", N: 1}}}
	frags, err := c.Fragments(geom.NewFrame())
	if err != nil {
		fmt.Println(err)
		return
	}
	sub := catalog.NewSubstituter(frags)
	if _, err := sub.Run(context.Background(), strings.NewReader("one: 122101\n"), os.Stdout); err != nil {
		fmt.Println(err)
	}
	// Output: one: <div class="latex3d" style="width:30px;height:0px;"><div style="transform:translate3d(15px,0px,0px);"><div>1</div></div></div>
}
