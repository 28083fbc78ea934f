//go:build cgo && talib

package bindings

/*
#include <stdlib.h>
#include <ta-lib/ta_abstract.h>

static const char *table_at(TA_StringTable *t, unsigned int i) { return t->string[i]; }
*/
import "C"

import "unsafe"

func stringTable(table *C.TA_StringTable) []string {
	out := make([]string, int(table.size))
	for i := range out {
		out[i] = C.GoString(C.table_at(table, C.uint(i)))
	}
	return out
}

// Groups lists the function groups known to the abstract interface.
func Groups() ([]string, error) {
	var table *C.TA_StringTable
	if rc := RetCode(C.TA_GroupTableAlloc(&table)); rc != Success {
		return nil, &CodeError{Op: "TA_GroupTableAlloc", Code: rc}
	}
	defer C.TA_GroupTableFree(table)
	return stringTable(table), nil
}

// Functions lists the functions of one group.
func Functions(group string) ([]string, error) {
	cgroup := C.CString(group)
	defer C.free(unsafe.Pointer(cgroup))

	var table *C.TA_StringTable
	if rc := RetCode(C.TA_FuncTableAlloc(cgroup, &table)); rc != Success {
		return nil, &CodeError{Op: "TA_FuncTableAlloc", Code: rc}
	}
	defer C.TA_FuncTableFree(table)
	return stringTable(table), nil
}

// GetFuncInfo describes a function and its parameters.
func GetFuncInfo(name string) (FuncInfo, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var handle *C.TA_FuncHandle
	if rc := RetCode(C.TA_GetFuncHandle(cname, &handle)); rc != Success {
		return FuncInfo{}, &CodeError{Op: "TA_GetFuncHandle", Code: rc}
	}
	var info *C.TA_FuncInfo
	if rc := RetCode(C.TA_GetFuncInfo(handle, &info)); rc != Success {
		return FuncInfo{}, &CodeError{Op: "TA_GetFuncInfo", Code: rc}
	}

	fi := FuncInfo{
		Name:      C.GoString(info.name),
		Group:     C.GoString(info.group),
		Hint:      C.GoString(info.hint),
		CamelCase: C.GoString(info.camelCaseName),
	}
	for i := C.uint(0); i < info.nbInput; i++ {
		var p *C.TA_InputParameterInfo
		if rc := RetCode(C.TA_GetInputParameterInfo(handle, i, &p)); rc != Success {
			return FuncInfo{}, &CodeError{Op: "TA_GetInputParameterInfo", Code: rc}
		}
		fi.Inputs = append(fi.Inputs, ParamInfo{Name: C.GoString(p.paramName), Type: inputType(p._type)})
	}
	for i := C.uint(0); i < info.nbOptInput; i++ {
		var p *C.TA_OptInputParameterInfo
		if rc := RetCode(C.TA_GetOptInputParameterInfo(handle, i, &p)); rc != Success {
			return FuncInfo{}, &CodeError{Op: "TA_GetOptInputParameterInfo", Code: rc}
		}
		fi.OptInputs = append(fi.OptInputs, ParamInfo{
			Name:         C.GoString(p.paramName),
			DisplayName:  C.GoString(p.displayName),
			Type:         optInputType(p._type),
			DefaultValue: float64(p.defaultValue),
			Hint:         C.GoString(p.hint),
		})
	}
	for i := C.uint(0); i < info.nbOutput; i++ {
		var p *C.TA_OutputParameterInfo
		if rc := RetCode(C.TA_GetOutputParameterInfo(handle, i, &p)); rc != Success {
			return FuncInfo{}, &CodeError{Op: "TA_GetOutputParameterInfo", Code: rc}
		}
		t := ParamReal
		if p._type == C.TA_Output_Integer {
			t = ParamInteger
		}
		fi.Outputs = append(fi.Outputs, ParamInfo{Name: C.GoString(p.paramName), Type: t})
	}
	return fi, nil
}

func inputType(t C.TA_InputParameterType) ParamType {
	switch t {
	case C.TA_Input_Price:
		return ParamPrice
	case C.TA_Input_Integer:
		return ParamInteger
	default:
		return ParamReal
	}
}

func optInputType(t C.TA_OptInputParameterType) ParamType {
	switch t {
	case C.TA_OptInput_RealRange:
		return ParamRealRange
	case C.TA_OptInput_RealList:
		return ParamRealList
	case C.TA_OptInput_IntegerList:
		return ParamIntegerList
	default:
		return ParamIntegerRange
	}
}
