package test

import (
	"testing"

	"github.com/kesimo/assocstore/bst"
	"github.com/kesimo/assocstore/hashtable"
)

func testSetupTable(capacity int) *hashtable.Table {
	tbl, err := hashtable.New(capacity)
	if err != nil {
		panic(err)
	}
	return tbl
}

func TestOrderedCRD(t *testing.T) {
	for _, tr := range []bst.Tree{bst.NewRecursive(), bst.NewIterative()} {
		//insert items
		for i, k := range []byte("MDTAGPZ") {
			tr.Insert(k, i)
		}
		if got := string(bst.Keys(tr, bst.Inorder)); got != "ADGMPTZ" {
			t.Errorf("expected inorder ADGMPTZ, got %v", got)
		}
		//get item
		v, ok := tr.Search('T')
		if !ok || v != 2 {
			t.Errorf("expected T=2, got %v (found=%v)", v, ok)
		}
		//delete item with two children
		tr.Delete('M')
		if _, ok := tr.Search('M'); ok {
			t.Errorf("M should be deleted")
		}
		if got := string(bst.Keys(tr, bst.Inorder)); got != "ADGPTZ" {
			t.Errorf("expected inorder ADGPTZ, got %v", got)
		}
		//update item
		tr.Insert('G', 100)
		if v, _ := tr.Search('G'); v != 100 {
			t.Errorf("expected G=100, got %v", v)
		}
		if tr.Len() != 6 {
			t.Errorf("expected 6 nodes, got %v", tr.Len())
		}
		tr.Dispose()
		if tr.Len() != 0 || tr.Root() != nil {
			t.Errorf("tree should be empty after dispose")
		}
	}
}

func TestTableCRD(t *testing.T) {
	tbl := testSetupTable(7)
	//set items sharing bucket 0
	tbl.Insert("a", 1.0)
	tbl.Insert("h", 2.0)
	//get items
	if v := tbl.Get("a"); v == nil || *v != 1.0 {
		t.Errorf("expected a=1, got %v", v)
	}
	if v := tbl.Get("h"); v == nil || *v != 2.0 {
		t.Errorf("expected h=2, got %v", v)
	}
	//delete item
	tbl.Delete("a")
	if tbl.Search("a") != nil {
		t.Errorf("a should be deleted")
	}
	if tbl.Search("h") == nil {
		t.Errorf("h should survive deleting its synonym")
	}
	//update item
	tbl.Insert("h", 3.0)
	if v := tbl.Get("h"); *v != 3.0 {
		t.Errorf("expected h=3, got %v", *v)
	}
	tbl.DeleteAll()
	if tbl.Len() != 0 {
		t.Errorf("table should be empty after delete all, got %v", tbl.Len())
	}
}

func TestTableInvalidCapacity(t *testing.T) {
	if _, err := hashtable.New(0); err == nil {
		t.Errorf("creating a table without buckets should fail")
	}
}
