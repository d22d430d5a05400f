package openaddr

/*
	This hash map implementation uses a closed hashing (open addressing) technique with
	quadratic probing for resolving any hash collisions. Deleted entries are not removed
	from the table, they are marked with a tombstone instead. More information about
	this technique can be found in the links provided below:
	01) https://en.wikipedia.org/wiki/Quadratic_probing
	02) https://en.wikipedia.org/wiki/Lazy_deletion
	03) https://www.cs.cmu.edu/~ckingsf/bioinfo-lectures/hashing.pdf
	The basic principal is:
	-----------------------
	1) Calculate the hash value and the initial index (hash mod capacity) of the entry
	2) Probe the positions start + 0, start + 1, start + 4, ... start + j*j (mod capacity)
	3) An empty bucket ends every probe, a tombstone never does
	4) A put claims the first tombstone or empty bucket it passed, unless the key turns
	   up live further along the same probe sequence, in which case that entry is updated
	5) The table capacity is always prime and the load is kept at or under 50%. Under
	   those two conditions the first (capacity+1)/2 probes land on distinct buckets,
	   so a free bucket is always reachable.
*/
