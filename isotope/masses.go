// isotope/masses.go
package isotope

// DB is the built-in isotope table, curated from the NIST atomic weights
// and isotopic compositions compilation. Masses in Da, abundances as mole
// fractions summing to 1 per element. Elements without a stable isotope
// (Tc, Pm, Po, ...) list their longest-lived isotopes without abundance.
var DB = Table{
	"H":  {WithAbundance(1, 1.007825, 0.999885), WithAbundance(2, 2.014102, 0.000115)},
	"He": {WithAbundance(3, 3.016029, 0.00000134), WithAbundance(4, 4.002602, 0.99999866)},
	"Li": {WithAbundance(6, 6.015123, 0.0759), WithAbundance(7, 7.016003, 0.9241)},
	"Be": {WithAbundance(9, 9.012183, 1)},
	"B":  {WithAbundance(10, 10.012937, 0.199), WithAbundance(11, 11.009305, 0.801)},
	"C":  {WithAbundance(12, 12.0, 0.9893), WithAbundance(13, 13.003355, 0.0107)},
	"N":  {WithAbundance(14, 14.003074, 0.99636), WithAbundance(15, 15.000109, 0.00364)},
	"O":  {WithAbundance(16, 15.994915, 0.99757), WithAbundance(17, 16.999132, 0.00038), WithAbundance(18, 17.999160, 0.00205)},
	"F":  {WithAbundance(19, 18.998403, 1)},
	"Ne": {WithAbundance(20, 19.992440, 0.9048), WithAbundance(21, 20.993847, 0.0027), WithAbundance(22, 21.991385, 0.0925)},
	"Na": {WithAbundance(23, 22.989769, 1)},
	"Mg": {WithAbundance(24, 23.985042, 0.7899), WithAbundance(25, 24.985837, 0.1000), WithAbundance(26, 25.982593, 0.1101)},
	"Al": {WithAbundance(27, 26.981538, 1)},
	"Si": {WithAbundance(28, 27.976927, 0.92223), WithAbundance(29, 28.976495, 0.04685), WithAbundance(30, 29.973770, 0.03092)},
	"P":  {WithAbundance(31, 30.973762, 1)},
	"S":  {WithAbundance(32, 31.972071, 0.9499), WithAbundance(33, 32.971459, 0.0075), WithAbundance(34, 33.967867, 0.0425), WithAbundance(36, 35.967081, 0.0001)},
	"Cl": {WithAbundance(35, 34.968853, 0.7576), WithAbundance(37, 36.965903, 0.2424)},
	"Ar": {WithAbundance(36, 35.967545, 0.003336), WithAbundance(38, 37.962732, 0.000629), WithAbundance(40, 39.962383, 0.996035)},
	"K":  {WithAbundance(39, 38.963706, 0.932581), WithAbundance(40, 39.963998, 0.000117), WithAbundance(41, 40.961825, 0.067302)},
	"Ca": {WithAbundance(40, 39.962591, 0.96941), WithAbundance(42, 41.958618, 0.00647), WithAbundance(43, 42.958766, 0.00135), WithAbundance(44, 43.955482, 0.02086), WithAbundance(46, 45.953689, 0.00004), WithAbundance(48, 47.952523, 0.00187)},
	"Ti": {WithAbundance(46, 45.952628, 0.0825), WithAbundance(47, 46.951759, 0.0744), WithAbundance(48, 47.947942, 0.7372), WithAbundance(49, 48.947866, 0.0541), WithAbundance(50, 49.944787, 0.0518)},
	"Cr": {WithAbundance(50, 49.946042, 0.04345), WithAbundance(52, 51.940506, 0.83789), WithAbundance(53, 52.940648, 0.09501), WithAbundance(54, 53.938879, 0.02365)},
	"Mn": {WithAbundance(55, 54.938044, 1)},
	"Fe": {WithAbundance(54, 53.939609, 0.05845), WithAbundance(56, 55.934936, 0.91754), WithAbundance(57, 56.935393, 0.02119), WithAbundance(58, 57.933274, 0.00282)},
	"Co": {WithAbundance(59, 58.933194, 1)},
	"Ni": {WithAbundance(58, 57.935342, 0.68077), WithAbundance(60, 59.930786, 0.26223), WithAbundance(61, 60.931056, 0.011399), WithAbundance(62, 61.928345, 0.036346), WithAbundance(64, 63.927967, 0.009255)},
	"Cu": {WithAbundance(63, 62.929598, 0.6915), WithAbundance(65, 64.927790, 0.3085)},
	"Zn": {WithAbundance(64, 63.929142, 0.4917), WithAbundance(66, 65.926034, 0.2773), WithAbundance(67, 66.927128, 0.0404), WithAbundance(68, 67.924845, 0.1845), WithAbundance(70, 69.925319, 0.0061)},
	"Br": {WithAbundance(79, 78.918338, 0.5069), WithAbundance(81, 80.916290, 0.4931)},
	"Kr": {WithAbundance(78, 77.920365, 0.00355), WithAbundance(80, 79.916378, 0.02286), WithAbundance(82, 81.913483, 0.11593), WithAbundance(83, 82.914127, 0.11500), WithAbundance(84, 83.911498, 0.56987), WithAbundance(86, 85.910611, 0.17279)},
	"Ag": {WithAbundance(107, 106.905092, 0.51839), WithAbundance(109, 108.904755, 0.48161)},
	"I":  {WithAbundance(127, 126.904472, 1)},
	"Au": {WithAbundance(197, 196.966569, 1)},
	"Pb": {WithAbundance(204, 203.973044, 0.014), WithAbundance(206, 205.974466, 0.241), WithAbundance(207, 206.975897, 0.221), WithAbundance(208, 207.976653, 0.524)},
	"U":  {WithAbundance(234, 234.040952, 0.000054), WithAbundance(235, 235.043930, 0.007204), WithAbundance(238, 238.050788, 0.992742)},

	// no stable isotope – abundance unavailable
	"Tc": {MassOnly(97, 96.906367), MassOnly(98, 97.907212), MassOnly(99, 98.906251)},
	"Pm": {MassOnly(145, 144.912756), MassOnly(147, 146.915145)},
	"Po": {MassOnly(209, 208.982430), MassOnly(210, 209.982874)},
	"At": {MassOnly(210, 209.987148), MassOnly(211, 210.987497)},
	"Rn": {MassOnly(211, 210.990601), MassOnly(220, 220.011394), MassOnly(222, 222.017578)},
	"Fr": {MassOnly(223, 223.019736)},
	"Ra": {MassOnly(226, 226.025410)},
	"Ac": {MassOnly(227, 227.027752)},
	"Np": {MassOnly(237, 237.048174)},
	"Pu": {MassOnly(244, 244.064205)},
}
