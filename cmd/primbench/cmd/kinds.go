package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/msto63/primarray/foundation/utils/primarray"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "Lists the element kinds",
	Long:  `Lists the eight primitive element kinds with their width, sort support and zero value.`,
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Kind", "Bits", "Sortable", "Zero array"})
		table.SetAutoFormatHeaders(false)
		table.SetBorder(false)
		for _, kind := range primarray.AllKinds() {
			table.Append([]string{
				kind.String(),
				strconv.Itoa(kind.Bits()),
				strconv.FormatBool(kind.Sortable()),
				zeroArray(kind),
			})
		}
		table.Render()
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}

// zeroArray renders a one-element array of kind as allocated
func zeroArray(kind primarray.Kind) string {
	switch kind {
	case primarray.KindByte:
		return primarray.New[int8](1).String()
	case primarray.KindShort:
		return primarray.New[int16](1).String()
	case primarray.KindInt:
		return primarray.New[int32](1).String()
	case primarray.KindLong:
		return primarray.New[int64](1).String()
	case primarray.KindFloat:
		return primarray.New[float32](1).String()
	case primarray.KindDouble:
		return primarray.New[float64](1).String()
	case primarray.KindBoolean:
		return primarray.New[bool](1).String()
	case primarray.KindChar:
		return fmt.Sprintf("%q", primarray.New[primarray.Char](1).String())
	default:
		return ""
	}
}
