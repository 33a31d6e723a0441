package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/optcore/internal/option"
	"github.com/dshills/optcore/internal/option/value"
)

var (
	getScope string
	getType  string
)

var getCmd = &cobra.Command{
	Use:   "get <option-name>",
	Short: "Resolve one option and print its folded value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		id := parseID(getScope, args[0])
		log.Debug().Str("option", id.Display()).Str("type", getType).Msg("resolving")

		out, err := resolve(stack, id, getType)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	getCmd.Flags().StringVar(&getScope, "scope", "", "option scope (empty for the global scope)")
	getCmd.Flags().StringVarP(&getType, "type", "t", "string", "value type: bool|int|float|string|string-list|int-list|float-list|bool-list|dict")
}

func resolve(stack *option.Stack, id option.OptionID, typ string) (string, error) {
	const unset = "(unset)"
	switch typ {
	case "bool":
		v, err := stack.GetBool(id)
		return scalarOut(v, unset), err
	case "int":
		v, err := stack.GetInt(id)
		return scalarOut(v, unset), err
	case "float":
		v, err := stack.GetFloat(id)
		return scalarOut(v, unset), err
	case "string":
		v, err := stack.GetString(id)
		return scalarOut(v, unset), err
	case "string-list":
		edits, err := stack.GetStringList(id)
		if err != nil || edits == nil {
			return unset, err
		}
		return fmt.Sprintf("%q", value.ApplyListEdits(edits)), nil
	case "int-list":
		edits, err := stack.GetIntList(id)
		if err != nil || edits == nil {
			return unset, err
		}
		return fmt.Sprintf("%v", value.ApplyListEdits(edits)), nil
	case "float-list":
		edits, err := stack.GetFloatList(id)
		if err != nil || edits == nil {
			return unset, err
		}
		return fmt.Sprintf("%v", value.ApplyListEdits(edits)), nil
	case "bool-list":
		edits, err := stack.GetBoolList(id)
		if err != nil || edits == nil {
			return unset, err
		}
		return fmt.Sprintf("%v", value.ApplyListEdits(edits)), nil
	case "dict":
		edits, err := stack.GetDict(id)
		if err != nil || edits == nil {
			return unset, err
		}
		return value.ApplyDictEdits(edits).String(), nil
	default:
		return "", fmt.Errorf("unknown --type %q", typ)
	}
}

func scalarOut[T any](v *T, unset string) string {
	if v == nil {
		return unset
	}
	return fmt.Sprintf("%v", *v)
}
